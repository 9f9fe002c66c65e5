package services

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"urbanary/internal/vocab"
	"urbanary/pkg/logger"
	"urbanary/pkg/utils"
)

type CategoryServiceInterface interface {
	// Extract resolves a single step to canonical category names. The result
	// is never empty; steps that match nothing come back as the
	// Unidentified sentinel.
	Extract(ctx context.Context, step string) []string
}

type CategoryService struct {
	classifier utils.ClassifierClientInterface
	log        logger.Logger
}

func NewCategoryService(classifier utils.ClassifierClientInterface, log logger.Logger) CategoryServiceInterface {
	return &CategoryService{classifier: classifier, log: log}
}

func (s *CategoryService) Extract(ctx context.Context, step string) []string {
	if found := extractFast(step); len(found) > 0 {
		return found
	}

	found := s.classify(ctx, step)
	if len(found) == 0 {
		return []string{vocab.Unidentified}
	}
	return found
}

// extractFast is the deterministic pass: synonym triggers match as whole
// words, category names as folded substrings. Triggers are checked in sorted
// order so output is stable run to run.
func extractFast(step string) []string {
	folded := vocab.Normalize(step)

	seen := make(map[string]bool)
	var found []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			found = append(found, name)
		}
	}

	triggers := make([]string, 0, len(vocab.Synonyms))
	for trigger := range vocab.Synonyms {
		triggers = append(triggers, trigger)
	}
	sort.Strings(triggers)
	for _, trigger := range triggers {
		if vocab.ContainsWord(folded, trigger) {
			for _, name := range vocab.Synonyms[trigger] {
				add(name)
			}
		}
	}

	for _, name := range vocab.Categories {
		if strings.Contains(folded, vocab.Normalize(name)) {
			add(name)
		}
	}
	return found
}

func (s *CategoryService) classify(ctx context.Context, step string) []string {
	raw, err := s.classifier.ClassifyCategories(ctx, step, vocab.Categories)
	if err != nil {
		s.log.Warn("category classifier unavailable, step left unidentified",
			zap.String("step", step), zap.Error(err))
		return nil
	}

	// The model occasionally invents names outside the vocabulary; those
	// are dropped rather than surfaced.
	seen := make(map[string]bool)
	var found []string
	for _, name := range raw {
		canonical := vocab.Canonicalize(name)
		if canonical != "" && !seen[canonical] {
			seen[canonical] = true
			found = append(found, canonical)
		}
	}
	return found
}

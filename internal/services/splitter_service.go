package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"urbanary/internal/vocab"
)

// SplitterConfig controls how aggressively a query is decomposed. The
// defaults are the strict policy: fragments of 3 characters or fewer are
// noise, and "and" alone does not separate intents ("fish and chips" is one
// step).
type SplitterConfig struct {
	MinFragmentLen   int
	SplitOnAnd       bool
	SplitOnCommas    bool
	DropPersonalData bool
}

func DefaultSplitterConfig() SplitterConfig {
	return SplitterConfig{
		MinFragmentLen:   3,
		SplitOnAnd:       false,
		SplitOnCommas:    true,
		DropPersonalData: true,
	}
}

type SplitterServiceInterface interface {
	// Split decomposes a raw query into ordered intent fragments. It always
	// returns at least one element; callers reject empty queries before
	// calling.
	Split(query string) []string
}

type SplitterService struct {
	cfg     SplitterConfig
	delim   *regexp.Regexp
	private *regexp.Regexp
}

func NewSplitterService(cfg SplitterConfig) SplitterServiceInterface {
	words := `then|after that|and finally|followed by|next|also`
	if cfg.SplitOnAnd {
		words += `|and`
	}
	return &SplitterService{
		cfg: cfg,
		// Connective words, semicolons, ampersands and sentence-ending
		// periods all become cut points. Matching runs over the folded
		// text; see Split.
		delim:   regexp.MustCompile(`\b(` + words + `)\b|[;&]|\.(\s|$)`),
		private: regexp.MustCompile(`\b(i am|i'm)\s+\d{1,3}\b|\b\d{1,3}\s*(years?|yrs?)\s*old\b`),
	}
}

func (s *SplitterService) Split(query string) []string {
	orig := []rune(query)
	folded := string(foldRunes(orig))

	// Delimiter offsets are found on the folded text and applied to the
	// original runes, so accents and casing survive in the output. Folding
	// is per-rune, so rune indices line up between the two.
	var fragments []string
	prev := 0
	for _, loc := range s.delim.FindAllStringIndex(folded, -1) {
		start := utf8.RuneCountInString(folded[:loc[0]])
		end := utf8.RuneCountInString(folded[:loc[1]])
		fragments = append(fragments, string(orig[prev:start]))
		prev = end
	}
	fragments = append(fragments, string(orig[prev:]))

	var steps []string
	for _, frag := range fragments {
		frag = strings.TrimSpace(frag)
		if utf8.RuneCountInString(frag) <= s.cfg.MinFragmentLen {
			continue
		}
		parts := []string{frag}
		if s.cfg.SplitOnCommas {
			parts = strings.Split(frag, ",")
		}
		for _, part := range parts {
			if part = strings.TrimSpace(part); part == "" {
				continue
			}
			if s.cfg.DropPersonalData && s.private.MatchString(strings.ToLower(part)) {
				continue
			}
			steps = append(steps, part)
		}
	}

	if len(steps) == 0 {
		return []string{strings.TrimSpace(query)}
	}
	return steps
}

// foldRunes lowercases and strips diacritics one rune at a time, preserving
// rune count so indices map back onto the original text.
func foldRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		f := vocab.Normalize(string(r))
		if f == "" {
			out[i] = r
			continue
		}
		out[i], _ = utf8.DecodeRuneInString(f)
	}
	return out
}

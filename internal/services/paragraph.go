package services

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"urbanary/internal/vocab"
)

// Copy is intentionally varied so repeated searches do not read identically.
// Template choice is cosmetic; the surrounding facts are always the same.

var venueDescTemplates = []string{
	"%s is a popular spot that locals keep coming back to.",
	"A well-loved local favourite, %s rarely disappoints.",
	"%s has built a solid reputation around here.",
	"For a reliable pick, %s is hard to beat.",
	"%s is one of those places people recommend without hesitation.",
}

func describeVenue(name string, rng *rand.Rand) string {
	return fmt.Sprintf(venueDescTemplates[rng.Intn(len(venueDescTemplates))], name)
}

var stepParagraphTemplates = []string{
	"Here are some great options for %s.",
	"These spots should work well for %s.",
	"For %s, these picks stand out.",
}

var fillerPrefix = regexp.MustCompile(`(?i)^(i want to|i'm planning to|i would like to)\s+`)

// cleanStep strips leading filler phrases so paragraphs read as the intent
// itself rather than the user's framing of it.
func cleanStep(step string) string {
	s := strings.TrimSpace(step)
	cleaned := strings.TrimSpace(fillerPrefix.ReplaceAllString(s, ""))
	if cleaned == "" {
		return s
	}
	return cleaned
}

var noMatchTemplates = []string{
	"We couldn't find a confident match for \"%s\", sorry.",
	"Nothing quite matched \"%s\" this time.",
	"No luck finding a match for \"%s\".",
}

// noMatchParagraph is used when a step resolves to nothing, neither a
// category nor any venues.
func noMatchParagraph(step string, rng *rand.Rand) string {
	return fmt.Sprintf(noMatchTemplates[rng.Intn(len(noMatchTemplates))], cleanStep(step))
}

// stepParagraph builds the short blurb shown above each step's results. The
// cleaned step text is always present; matched categories are named after it.
func stepParagraph(step string, categories []string, rng *rand.Rand) string {
	p := fmt.Sprintf(stepParagraphTemplates[rng.Intn(len(stepParagraphTemplates))], cleanStep(step))
	if len(categories) > 0 && categories[0] != vocab.Unidentified {
		p += " Think " + strings.ToLower(strings.Join(categories, ", ")) + "."
	}
	return p
}

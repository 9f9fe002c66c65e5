package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSplitter() SplitterServiceInterface {
	return NewSplitterService(DefaultSplitterConfig())
}

func TestSplitConnectives(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "single intent passes through",
			query: "rooftop bar with a view",
			want:  []string{"rooftop bar with a view"},
		},
		{
			name:  "then splits steps",
			query: "rooftop bar then pizza",
			want:  []string{"rooftop bar", "pizza"},
		},
		{
			name:  "chained connectives",
			query: "brunch after that karaoke and finally cocktails",
			want:  []string{"brunch", "karaoke", "cocktails"},
		},
		{
			name:  "semicolons and ampersands",
			query: "wine tasting; bowling & karaoke night",
			want:  []string{"wine tasting", "bowling", "karaoke night"},
		},
		{
			name:  "followed by and next",
			query: "dinner followed by drinks next dancing",
			want:  []string{"dinner", "drinks", "dancing"},
		},
		{
			name:  "and alone does not split",
			query: "fish and chips",
			want:  []string{"fish and chips"},
		},
		{
			name:  "connective matched case insensitively",
			query: "brunch THEN cocktails",
			want:  []string{"brunch", "cocktails"},
		},
		{
			name:  "connective inside a word does not split",
			query: "authentic ramen place",
			want:  []string{"authentic ramen place"},
		},
	}

	s := newTestSplitter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Split(tt.query))
		})
	}
}

func TestSplitCommas(t *testing.T) {
	s := newTestSplitter()
	assert.Equal(t,
		[]string{"cocktails", "dinner", "live music"},
		s.Split("cocktails, dinner, live music"))

	noCommas := NewSplitterService(SplitterConfig{MinFragmentLen: 3, SplitOnCommas: false})
	assert.Equal(t,
		[]string{"cocktails, dinner, live music"},
		noCommas.Split("cocktails, dinner, live music"))
}

func TestSplitDropsShortFragments(t *testing.T) {
	s := newTestSplitter()
	// "gig" survives nothing: three characters is below the floor
	assert.Equal(t, []string{"karaoke"}, s.Split("gig then karaoke"))
}

func TestSplitAlwaysReturnsAtLeastOne(t *testing.T) {
	s := newTestSplitter()
	// every fragment is filtered out, the whole query comes back
	assert.Equal(t, []string{"pub"}, s.Split("pub"))
}

func TestSplitPreservesAccentsAndCasing(t *testing.T) {
	s := newTestSplitter()
	assert.Equal(t, []string{"Café crawl", "Tapas"}, s.Split("Café crawl then Tapas"))
}

func TestSplitDropsPersonalData(t *testing.T) {
	s := newTestSplitter()
	assert.Equal(t,
		[]string{"rooftop bar", "pizza"},
		s.Split("I am 25 years old, rooftop bar then pizza"))

	keep := NewSplitterService(SplitterConfig{MinFragmentLen: 3, SplitOnCommas: true})
	assert.Equal(t,
		[]string{"I am 25 years old", "rooftop bar"},
		keep.Split("I am 25 years old, rooftop bar"))
}

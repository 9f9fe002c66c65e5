// Package vocab holds the controlled vocabulary of venue categories and the
// synonym table used by the hybrid search pipeline. The data is static and
// loaded once at process start; category identity is the exact string.
package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Unidentified is the sentinel category returned when no deterministic or
// model-based match is found for a step.
const Unidentified = "Unidentified"

// Categories is the canonical, ordered category list. Order matters only for
// presentation; membership is tested against the normalized set below.
var Categories = []string{
	"Restaurant",
	"Fine Dining",
	"Casual Dining",
	"Street Food",
	"Brunch Spot",
	"Café",
	"Coffee Shop",
	"Bakery",
	"Dessert Bar",
	"Vegan",
	"Vegetarian",
	"Halal",
	"Steakhouse",
	"Seafood",
	"Burger Joint",
	"Pizza Place",
	"Tapas Bar",
	"Pub Grub",
	"Gastropub",
	"Food Market",
	"Rooftop Restaurant",
	"Hidden Gem",
	"Food Hall",
	"Takeaway",
	"Late-Night Eats",
	"Cocktail Bar",
	"Party Bar",
	"Wine Bar",
	"Pub",
	"Speakeasy",
	"Lounge Bar",
	"Tiki Bar",
	"Sports Bar",
	"Whisky Bar",
	"Rum Bar",
	"Gin Bar",
	"Shisha Lounge",
	"Live Music Bar",
	"Entertainment Bar",
	"Dive Bar",
	"Rooftop Bar",
	"Hidden Bar",
	"VIP Club",
	"Nightclub",
	"Gentlemen’s Club",
	"Late Night Lounge",
	"Brewery Taproom",
	"Distillery Bar",
	"Beer Garden",
	"Karaoke Bar",
	"Immersive Experience",
	"Escape Room",
	"Arcade",
	"Virtual Reality",
	"Bowling",
	"Mini Golf",
	"Darts",
	"Pool & Snooker",
	"Quiz Night",
	"Board Games",
	"Comedy Show",
	"Theatre Show",
	"Cinema",
	"Outdoor Cinema",
	"Live Performance",
	"Boat Party",
	"Silent Disco",
	"Wine Tasting",
	"Cocktail Masterclass",
	"Cooking Class",
	"Art Class",
	"Pottery Class",
	"Dance Class",
	"Yoga Class",
	"Wellness Experience",
	"Spa",
	"Hot Tub Experience",
	"Birthday Party",
	"Hen Party",
	"Stag Party",
	"Corporate Event",
	"Private Hire",
	"After-Work Drinks",
	"Networking Event",
	"Charity Event",
	"Launch Party",
	"Speed Dating",
	"Singles Night",
	"Live DJ Night",
	"Brunch Party",
	"Bottomless Brunch",
	"Themed Event",
	"Seasonal Party",
	"Halloween",
	"Christmas",
	"New Year’s Eve",
	"Summer Festival",
	"Street Party",
	"Food Festival",
	"Cultural Festival",
	"House",
	"Techno",
	"Hip Hop",
	"Afrobeats",
	"bistro",
	"Reggaeton",
	"Pop",
	"Chart Hits",
	"Indie",
	"Rock",
	"Jazz",
	"Soul",
	"Funk",
	"Live Band",
	"DJ Set",
	"Chill Lounge",
	"Upbeat",
	"Party Mashup",
	"Date Night",
	"First Date",
	"Romantic",
	"Group Hangout",
	"Solo Friendly",
	"Work Lunch",
	"Casual Meetup",
	"Friends Night Out",
	"Family Friendly",
	"Student Night",
	"Budget Friendly",
	"Luxury",
	"Something A Little Different",
	"Viral Spot",
	"New Opening",
	"Trending",
	"Area",
	"Neighbourhood",
	"City",
	"Region",
	"Near Me",
	"Casual",
	"Smart Casual",
	"Dress To Impress",
	"Formal",
	"No Sportswear",
	"No Hoodies",
	"Themed Costume",
	"Outdoor Seating",
	"Rooftop Terrace",
	"Heated Terrace",
	"Street Side Tables",
	"Private Rooms",
	"Garden Area",
	"Smoking Area",
	"Dance Floor",
	"Stage",
	"Big Screen Sports",
	"DJ Booth",
	"Photo Booth",
	"Pet Friendly",
	"Free Wi-Fi",
	"Daytime",
	"Evening",
	"Late Night",
	"All Day",
	"Weekend",
	"Weekday",
	"Seasonal",
	"Taking Bookings",
	"Walk-ins Welcome",
	"Free Entry",
	"Ticketed",
	"Guest List",
	"Pre-book Required",
	"VIP Package",
	"Group Booking",
	"Walk-in Only",
	"Art",
	"Theatre",
	"Comedy",
	"Film",
	"Literature",
	"LGBTQ+",
	"Cultural Experience",
	"Sustainability",
	"Local Produce",
	"Independent Venue",
	"Heritage Venue",
}

// Synonyms maps a lowercase trigger word to the categories it implies. A
// trigger matches only as a whole word within the step text.
var Synonyms = map[string][]string{
	"pizza":    {"Pizza Place"},
	"burger":   {"Burger Joint"},
	"coffee":   {"Coffee Shop", "Café"},
	"pub":      {"Pub", "Gastropub"},
	"rooftop":  {"Rooftop Bar", "Rooftop Terrace", "Rooftop Restaurant"},
	"cocktail": {"Cocktail Bar"},
	"wine":     {"Wine Bar"},
	"dog":      {"Pet Friendly"},
	"brunch":   {"Brunch Spot", "Bottomless Brunch"},
	"music":    {"Live Music Bar", "Live DJ Night", "DJ Set", "Live Band"},
	"spa":      {"Spa"},
	"arcade":   {"Arcade"},
	"bowling":  {"Bowling"},
	"karaoke":  {"Karaoke Bar"},
	"dance":    {"Dance Class", "DJ Set"},
	"art":      {"Art Class"},
	"pottery":  {"Pottery Class"},
}

// skipLookupBound marks the end of the concrete venue/experience categories
// inside Categories. A step whose detected categories all fall before this
// bound is considered fully resolved by the vocabulary and skips the external
// place lookup; descriptor categories (music genres, occasions, dress codes,
// timing, booking) after the bound are too weak a signal on their own.
const skipLookupBound = "Cultural Festival"

var (
	canonical  map[string]string // normalized name -> canonical name
	skipLookup map[string]bool   // canonical name -> resolved deterministically
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func init() {
	canonical = make(map[string]string, len(Categories))
	skipLookup = make(map[string]bool, len(Categories))
	concrete := true
	for _, c := range Categories {
		canonical[Normalize(c)] = c
		if concrete {
			skipLookup[c] = true
		}
		if c == skipLookupBound {
			concrete = false
		}
	}
}

// Normalize lowercases and strips diacritics so "Café" and "cafe" compare
// equal. Falls back to plain lowercasing if the transform fails.
func Normalize(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// IsCanonical reports whether name is a member of the controlled vocabulary,
// comparing case- and diacritic-insensitively.
func IsCanonical(name string) bool {
	_, ok := canonical[Normalize(name)]
	return ok
}

// Canonicalize returns the canonical spelling for name, or "" when name is
// not in the vocabulary.
func Canonicalize(name string) string {
	return canonical[Normalize(name)]
}

// ResolvedDeterministically reports whether cat is a concrete venue category
// that needs no external lookup once matched.
func ResolvedDeterministically(cat string) bool {
	return skipLookup[cat]
}

// Tokens splits s into normalized word tokens, dropping empties.
func Tokens(s string) []string {
	fields := strings.FieldsFunc(Normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return fields
}

// ContainsWord reports whether word occurs as a whole token in text.
func ContainsWord(text, word string) bool {
	w := Normalize(word)
	for _, t := range Tokens(text) {
		if t == w {
			return true
		}
	}
	return false
}

package response_models

// VenueResult is the normalized view of one place, built either from the
// places provider or from the curated venue directory. Never mutated after
// creation.
type VenueResult struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Image       *string  `json:"image"`
	Logo        string   `json:"logo,omitempty"`
	Pricing     string   `json:"pricing"`
	OpenStatus  string   `json:"openStatus"`
	Phone       *string  `json:"phone"`
	Rating      *float64 `json:"rating"`
	Reviews     *int     `json:"reviews"`
	Map         string   `json:"map"`
}

// StepResult is the assembled outcome for one intent step of a query.
type StepResult struct {
	Intent     string        `json:"intent"`
	Paragraph  string        `json:"paragraph"`
	Categories []string      `json:"categories"`
	Venues     []VenueResult `json:"venues,omitempty"`
}

type HybridSearchResponse struct {
	Input  string       `json:"input"`
	Steps  []StepResult `json:"steps"`
	Cached bool         `json:"cached"`
}

type AssistantResponse struct {
	Reply  string        `json:"reply"`
	Venues []VenueResult `json:"venues"`
}

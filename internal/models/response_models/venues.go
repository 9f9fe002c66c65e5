package response_models

type VenueHour struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type Venue struct {
	ID          string      `json:"id"`
	Image       string      `json:"image"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Phone       string      `json:"phone,omitempty"`
	MapLink     string      `json:"map_link"`
	Categories  []string    `json:"categories"`
	Rating      float64     `json:"rating"`
	Reviews     int         `json:"reviews"`
	Hours       []VenueHour `json:"hours"`
}

type VenueCategory struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}

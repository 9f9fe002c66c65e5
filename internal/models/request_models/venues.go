package request_models

type VenueHourInput struct {
	Day   string `json:"day" binding:"required"`
	Open  string `json:"open" binding:"required"`
	Close string `json:"close" binding:"required"`
}

type CreateVenueRequest struct {
	Image       string           `json:"image" binding:"required"`
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Phone       string           `json:"phone"`
	MapLink     string           `json:"map_link" binding:"required"`
	Categories  []string         `json:"categories" binding:"required"`
	Rating      float64          `json:"rating"`
	Reviews     int              `json:"reviews"`
	Hours       []VenueHourInput `json:"hours"`
}

type CreateVenueCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

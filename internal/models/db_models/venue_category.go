package db_models

// VenueCategory is an editorial category label for the curated directory.
type VenueCategory struct {
	BaseModel
	Category string `gorm:"unique;not null"`
}

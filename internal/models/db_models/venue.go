package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Venue is a curated directory entry maintained through the venues API, as
// opposed to the transient records coming back from the places provider.
type Venue struct {
	BaseModel
	Image       string `gorm:"not null"`
	Name        string `gorm:"not null;index"`
	Description string `gorm:"not null"`
	Phone       string
	MapLink     string         `gorm:"not null"`
	Categories  pq.StringArray `gorm:"type:text[]"`
	Rating      float64
	Reviews     int
	Hours       []VenueHour `gorm:"foreignKey:VenueID"`
}

// VenueHour is one opening-hours row, e.g. {Monday 09:00 23:00}.
type VenueHour struct {
	ID      uint `gorm:"primaryKey"`
	VenueID uuid.UUID
	Day     string `gorm:"not null"`
	Open    string `gorm:"not null"`
	Close   string `gorm:"not null"`
}

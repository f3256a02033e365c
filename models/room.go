package models

import (
	"gorm.io/gorm"
)

// Room is one catalogue entry. The catalogue is seeded from configuration and
// defines the universe of rooms availability is computed against.
type Room struct {
	gorm.Model

	Number        int     `json:"number" gorm:"column:room_number;uniqueIndex"`
	Type          string  `json:"type" gorm:"type:varchar(50)"`
	Floor         string  `json:"floor" gorm:"type:varchar(10)"`
	Capacity      int     `json:"capacity" gorm:"column:capacity"`
	PricePerNight float64 `json:"pricePerNight" gorm:"column:price_per_night"`
	Description   string  `json:"description" gorm:"type:text"`
}

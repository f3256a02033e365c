package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Date        *time.Time `gorm:"column:date" json:"date,omitempty"`
	Category    string     `gorm:"column:category;size:100" json:"category"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	Amount      float64    `gorm:"column:amount" json:"amount"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice is a listing row recorded when a reservation closes. Numbering is
// assigned by the caller of the issuer hook; the core only reads these back.
type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Number        int       `gorm:"column:number;index" json:"number"`
	ReservationID uint      `gorm:"column:reservation_id;index" json:"reservationId"`
	GuestName     string    `gorm:"column:guest_name;size:255" json:"guestName"`
	Amount        float64   `gorm:"column:amount" json:"amount"`
	AmountDue     float64   `gorm:"column:amount_due" json:"amountDue"`
	IssuedAt      time.Time `gorm:"column:issued_at" json:"issuedAt"`
}

package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusInAttesa   ReservationStatus = "in_attesa"
	StatusConfermata ReservationStatus = "confermata"
	StatusAnnullata  ReservationStatus = "annullata"
	StatusConclusa   ReservationStatus = "conclusa"
)

var statusTransitions = map[ReservationStatus][]ReservationStatus{
	StatusInAttesa:   {StatusConfermata, StatusAnnullata},
	StatusConfermata: {StatusConclusa, StatusAnnullata},
	StatusAnnullata:  {},
	StatusConclusa:   {},
}

func ParseReservationStatus(raw string) (ReservationStatus, bool) {
	s := ReservationStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusInAttesa, StatusConfermata, StatusAnnullata, StatusConclusa:
		return s, true
	}
	return "", false
}

func (s ReservationStatus) CanTransitionTo(to ReservationStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ReservationStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// BlocksRooms reports whether the reservation still occupies its rooms for
// availability purposes. Cancelled reservations stay visible in listings but
// no longer count as conflicts.
func (s ReservationStatus) BlocksRooms() bool {
	return s != StatusAnnullata
}

type PricingKind string

const (
	PricingPerNight        PricingKind = "per_night"
	PricingTotal           PricingKind = "total"
	PricingPerNightPerRoom PricingKind = "per_night_per_room"
	PricingPerNightUniform PricingKind = "per_night_uniform"
	PricingTotalForStay    PricingKind = "total_for_stay"
)

// PricingMode is the operator-chosen strategy for deriving the base price.
// Records saved before this descriptor existed carry none at all; those fall
// back to the stored PriceWithoutExtras.
type PricingMode struct {
	Kind          PricingKind     `json:"kind"`
	PricePerNight float64         `json:"pricePerNight,omitempty"`
	TotalForStay  float64         `json:"totalForStay,omitempty"`
	UniformRate   float64         `json:"uniformRate,omitempty"`
	Rates         map[int]float64 `json:"rates,omitempty"`
}

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestName string `gorm:"column:guest_name;size:255" json:"guestName"`
	GroupName string `gorm:"column:group_name;size:255" json:"groupName,omitempty"`
	IsGroup   bool   `gorm:"column:is_group" json:"isGroup"`

	// RoomNumber is the legacy single-room column; current records keep the
	// full list in RoomNumbers.
	RoomNumber  *int                     `gorm:"column:room_number" json:"roomNumber,omitempty"`
	RoomNumbers datatypes.JSONSlice[int] `gorm:"column:room_numbers" json:"roomNumbers"`

	CheckIn  *time.Time `gorm:"column:check_in" json:"checkIn,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"checkOut,omitempty"`

	PricingMode *datatypes.JSONType[PricingMode]    `gorm:"column:pricing_mode" json:"pricingMode,omitempty"`
	RoomPrices  datatypes.JSONType[map[int]float64] `gorm:"column:room_prices" json:"roomPrices"`

	Extras     datatypes.JSONType[ExtrasSet]         `gorm:"column:extras" json:"extras"`
	RoomExtras datatypes.JSONType[map[int]ExtrasSet] `gorm:"column:room_extras" json:"roomExtras"`
	Crib       bool                                  `gorm:"column:crib" json:"crib"`
	RoomCribs  datatypes.JSONType[map[int]bool]      `gorm:"column:room_cribs" json:"roomCribs"`

	Deposit            float64  `gorm:"column:deposit" json:"deposit"`
	PriceWithoutExtras float64  `gorm:"column:price_without_extras" json:"priceWithoutExtras"`
	PriceWithExtras    float64  `gorm:"column:price_with_extras" json:"priceWithExtras"`
	Price              float64  `gorm:"column:price" json:"price"`
	FinalPriceOverride *float64 `gorm:"column:final_price_override" json:"finalPriceOverride,omitempty"`

	Status    ReservationStatus `gorm:"column:status;size:32;default:in_attesa" json:"status"`
	NumGuests int               `gorm:"column:num_guests" json:"numGuests"`
}

// Rooms returns every room the reservation claims, normalizing legacy
// single-room records to a one-element list.
func (r *Reservation) Rooms() []int {
	if len(r.RoomNumbers) > 0 {
		return r.RoomNumbers
	}
	if r.RoomNumber != nil {
		return []int{*r.RoomNumber}
	}
	return nil
}

// Mode returns the pricing descriptor, nil for legacy records.
func (r *Reservation) Mode() *PricingMode {
	if r.PricingMode == nil {
		return nil
	}
	m := r.PricingMode.Data()
	if m.Kind == "" {
		return nil
	}
	return &m
}

// RateFor resolves the per-night rate for one room from the rate table.
func (r *Reservation) RateFor(room int) float64 {
	if prices := r.RoomPrices.Data(); prices != nil {
		return prices[room]
	}
	return 0
}

// ExtrasFor resolves the extras set for one room: the per-room map for group
// bookings, the scalar set otherwise.
func (r *Reservation) ExtrasFor(room int) ExtrasSet {
	if r.IsGroup {
		if m := r.RoomExtras.Data(); m != nil {
			return m[room]
		}
		return ExtrasSet{}
	}
	return r.Extras.Data()
}

// CribFor resolves the crib flag for one room.
func (r *Reservation) CribFor(room int) bool {
	if r.IsGroup {
		if m := r.RoomCribs.Data(); m != nil {
			return m[room]
		}
		return false
	}
	return r.Crib
}

// DisplayName is the occupant name for single bookings, the group name for
// group bookings.
func (r *Reservation) DisplayName() string {
	if r.IsGroup && strings.TrimSpace(r.GroupName) != "" {
		return r.GroupName
	}
	return r.GuestName
}

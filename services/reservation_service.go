package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

var (
	ErrReservationNotFound = errors.New("reservation_not_found")
	ErrReservationClosed   = errors.New("reservation_closed")
	ErrInvalidTransition   = errors.New("invalid_transition")
	ErrInvalidDateRange    = errors.New("invalid_date_range")
	ErrNoRooms             = errors.New("no_rooms_selected")
	ErrUnknownRoom         = errors.New("room_not_in_catalogue")
)

// ReservationService wraps *gorm.DB for reservation persistence. Pricing and
// availability themselves stay in the pure components; this layer loads,
// delegates and writes the derived fields back.
type ReservationService struct {
	DB      *gorm.DB
	Builder *ReservationDraftBuilder
	Engine  *PricingEngine
	Issuer  InvoiceIssuer
}

func NewReservationService(db *gorm.DB, issuer InvoiceIssuer) *ReservationService {
	return &ReservationService{
		DB:      db,
		Builder: NewReservationDraftBuilder(),
		Engine:  NewPricingEngine(),
		Issuer:  issuer,
	}
}

// Preview runs the same draft path the write side uses, without persisting.
func (s *ReservationService) Preview(form ReservationForm) PricingSummary {
	return s.Engine.Summarize(s.Builder.BuildReservation(form))
}

func (s *ReservationService) Create(form ReservationForm) (*models.Reservation, error) {
	r := s.Builder.BuildReservation(form)
	if err := s.validateBookable(&r); err != nil {
		return nil, err
	}

	summary := s.Engine.Summarize(r)
	applySummary(&r, summary)

	if err := s.DB.Create(&r).Error; err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return &r, nil
}

// Update replaces a reservation from form state. The status field goes
// through the same lifecycle machine as ChangeStatus: a terminal reservation
// cannot be edited or reopened, and closing one here freezes the price and
// fires the invoice hook exactly as ChangeStatus would.
func (s *ReservationService) Update(id uint, form ReservationForm) (*models.Reservation, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if existing.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s", ErrReservationClosed, existing.Status)
	}

	r := s.Builder.BuildReservation(form)
	if err := s.validateBookable(&r); err != nil {
		return nil, err
	}
	r.ID = existing.ID
	r.CreatedAt = existing.CreatedAt
	r.Status = existing.Status
	if status, ok := models.ParseReservationStatus(form.Status); ok && status != existing.Status {
		if !existing.Status.CanTransitionTo(status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.Status, status)
		}
		r.Status = status
	}

	// Quick-edits always re-run the engine before writing.
	summary := s.Engine.Summarize(r)
	applySummary(&r, summary)

	if r.Status == models.StatusConclusa {
		s.closeOut(&r)
	}

	if err := s.DB.Save(&r).Error; err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}
	return &r, nil
}

func (s *ReservationService) Get(id uint) (*models.Reservation, error) {
	var r models.Reservation
	if err := s.DB.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reservation: %w", err)
	}
	return &r, nil
}

func (s *ReservationService) List() ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

func (s *ReservationService) Delete(id uint) error {
	if err := s.DB.Delete(&models.Reservation{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}

// ChangeStatus enforces the lifecycle machine. Closing a reservation freezes
// its price at the reconciled final amount and fires the invoice hook;
// invoice issuance is best-effort from the caller's point of view.
func (s *ReservationService) ChangeStatus(id uint, to models.ReservationStatus) (*models.Reservation, error) {
	r, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !r.Status.CanTransitionTo(to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
	}

	r.Status = to
	if to == models.StatusConclusa {
		s.closeOut(r)
	}

	if err := s.DB.Save(r).Error; err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	return r, nil
}

// closeOut freezes the price at the reconciled final amount and fires the
// invoice hook. Issuance is best-effort from the caller's point of view.
func (s *ReservationService) closeOut(r *models.Reservation) {
	summary := s.Engine.Summarize(*r)
	r.Price = summary.FinalPrice
	if s.Issuer != nil {
		if err := s.Issuer.Issue(*r, summary); err != nil {
			log.Printf("warning: invoice issue failed for reservation %d: %v", r.ID, err)
		}
	}
}

// CheckAvailability loads the full reservation snapshot and delegates to the
// resolver. Advisory only: two clients can pass this check for the same room
// and both write; accepted at this scale, the UI simply refuses selection.
func (s *ReservationService) CheckAvailability(checkIn, checkOut time.Time, excludeID uint) (AvailabilityResult, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return AvailabilityResult{}, fmt.Errorf("failed to load room catalogue: %w", err)
	}
	universe := make([]int, 0, len(rooms))
	for _, room := range rooms {
		universe = append(universe, room.Number)
	}

	var all []models.Reservation
	if err := s.DB.Find(&all).Error; err != nil {
		return AvailabilityResult{}, fmt.Errorf("failed to load reservations: %w", err)
	}

	return NewAvailabilityResolver(universe).Resolve(checkIn, checkOut, all, excludeID), nil
}

// SuggestOccupancy sums catalogue capacities for the selected rooms.
func (s *ReservationService) SuggestOccupancy(roomNumbers []int) (int, error) {
	if len(roomNumbers) == 0 {
		return 0, nil
	}
	var rooms []models.Room
	if err := s.DB.Where("room_number IN ?", roomNumbers).Find(&rooms).Error; err != nil {
		return 0, fmt.Errorf("failed to load rooms: %w", err)
	}
	total := 0
	for _, room := range rooms {
		total += room.Capacity
	}
	return total, nil
}

func (s *ReservationService) validateBookable(r *models.Reservation) error {
	if len(r.Rooms()) == 0 {
		return ErrNoRooms
	}
	if r.CheckIn == nil || r.CheckOut == nil || !r.CheckOut.After(*r.CheckIn) {
		return ErrInvalidDateRange
	}
	for _, room := range r.Rooms() {
		var count int64
		if err := s.DB.Model(&models.Room{}).Where("room_number = ?", room).Count(&count).Error; err != nil {
			return fmt.Errorf("db error checking room %d: %w", room, err)
		}
		if count == 0 {
			return fmt.Errorf("%w: %d", ErrUnknownRoom, room)
		}
	}
	return nil
}

// applySummary writes the engine's derived fields back onto the record; the
// engine itself never mutates its input.
func applySummary(r *models.Reservation, s PricingSummary) {
	r.PriceWithoutExtras = s.Base
	r.PriceWithExtras = utils.Round2(s.Base + s.ExtrasTotal)
	r.Price = s.FinalPrice
}

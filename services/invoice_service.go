package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"hotel-backoffice/models"
)

var ErrInvoiceNotFound = errors.New("invoice_not_found")

// InvoiceIssuer is the hook fired when a reservation closes. Rendering,
// delivery and fiscal numbering live outside this service; the default
// implementation only records a listing row.
type InvoiceIssuer interface {
	Issue(r models.Reservation, summary PricingSummary) error
}

// RecordingInvoiceIssuer appends an invoice row with the next sequential
// number so closed reservations show up in the listing.
type RecordingInvoiceIssuer struct {
	DB *gorm.DB
}

func NewRecordingInvoiceIssuer(db *gorm.DB) *RecordingInvoiceIssuer {
	return &RecordingInvoiceIssuer{DB: db}
}

func (i *RecordingInvoiceIssuer) Issue(r models.Reservation, summary PricingSummary) error {
	var last int
	row := i.DB.Model(&models.Invoice{}).Select("COALESCE(MAX(number), 0)").Row()
	if err := row.Scan(&last); err != nil {
		return fmt.Errorf("failed to read last invoice number: %w", err)
	}

	inv := models.Invoice{
		Number:        last + 1,
		ReservationID: r.ID,
		GuestName:     r.DisplayName(),
		Amount:        summary.FinalPrice,
		AmountDue:     summary.AmountDue,
		IssuedAt:      time.Now().UTC(),
	}
	if err := i.DB.Create(&inv).Error; err != nil {
		return fmt.Errorf("failed to record invoice: %w", err)
	}
	log.Printf("invoice %d recorded for reservation %d (final=%.2f due=%.2f)", inv.Number, r.ID, inv.Amount, inv.AmountDue)
	return nil
}

type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

func (s *InvoiceService) List() ([]models.Invoice, error) {
	var list []models.Invoice
	if err := s.DB.Order("number DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	return list, nil
}

func (s *InvoiceService) GetByReservation(reservationID uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.DB.Where("reservation_id = ?", reservationID).Order("number DESC").First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to retrieve invoice: %w", err)
	}
	return &inv, nil
}

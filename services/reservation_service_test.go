package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-backoffice/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Room{}, &models.Reservation{}, &models.Expense{}, &models.Invoice{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	rooms := []models.Room{
		{Number: 1, Type: "Matrimoniale", Capacity: 2, PricePerNight: 80},
		{Number: 2, Type: "Doppia", Capacity: 2, PricePerNight: 75},
		{Number: 3, Type: "Tripla", Capacity: 3, PricePerNight: 95},
	}
	if err := db.Create(&rooms).Error; err != nil {
		t.Fatalf("failed to seed rooms: %v", err)
	}
	return db
}

func newTestService(t *testing.T) *ReservationService {
	db := setupTestDB(t)
	return NewReservationService(db, NewRecordingInvoiceIssuer(db))
}

func singleForm() ReservationForm {
	return ReservationForm{
		GuestName:     "Rossi",
		RoomNumbers:   []string{"1"},
		CheckIn:       "2024-01-10",
		CheckOut:      "2024-01-13",
		PricingKind:   "per_night",
		PricePerNight: "100",
		Deposit:       "50",
	}
}

func TestCreatePersistsComputedFields(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(singleForm())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	var stored models.Reservation
	if err := svc.DB.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("failed to reload reservation: %v", err)
	}
	if stored.PriceWithoutExtras != 300 {
		t.Errorf("priceWithoutExtras = %v, want 300", stored.PriceWithoutExtras)
	}
	if stored.PriceWithExtras != 300 {
		t.Errorf("priceWithExtras = %v, want 300", stored.PriceWithExtras)
	}
	if stored.Price != 300 {
		t.Errorf("price = %v, want 300", stored.Price)
	}
	if stored.Status != models.StatusInAttesa {
		t.Errorf("status = %s, want in_attesa", stored.Status)
	}
}

func TestCreateValidations(t *testing.T) {
	svc := newTestService(t)

	form := singleForm()
	form.RoomNumbers = nil
	if _, err := svc.Create(form); !errors.Is(err, ErrNoRooms) {
		t.Errorf("no rooms: err = %v, want ErrNoRooms", err)
	}

	form = singleForm()
	form.CheckOut = form.CheckIn
	if _, err := svc.Create(form); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("degenerate range: err = %v, want ErrInvalidDateRange", err)
	}

	form = singleForm()
	form.RoomNumbers = []string{"99"}
	if _, err := svc.Create(form); !errors.Is(err, ErrUnknownRoom) {
		t.Errorf("unknown room: err = %v, want ErrUnknownRoom", err)
	}
}

func TestUpdateRepricesBeforeWriting(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.Create(singleForm())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	form := singleForm()
	form.Extras = ExtrasForm{ExtraBar: "30"}
	updated, err := svc.Update(created.ID, form)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.PriceWithExtras != 330 {
		t.Errorf("priceWithExtras = %v, want 330 after extras top-up", updated.PriceWithExtras)
	}
	if updated.Price != 330 {
		t.Errorf("price = %v, want re-priced 330", updated.Price)
	}
}

func TestUpdateCannotReopenClosedReservation(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.Create(singleForm())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.ChangeStatus(created.ID, models.StatusConfermata); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if _, err := svc.ChangeStatus(created.ID, models.StatusConclusa); err != nil {
		t.Fatalf("close: %v", err)
	}

	form := singleForm()
	form.Status = "in_attesa"
	form.PricePerNight = "10"
	if _, err := svc.Update(created.ID, form); !errors.Is(err, ErrReservationClosed) {
		t.Fatalf("Update on closed reservation: err = %v, want ErrReservationClosed", err)
	}

	var stored models.Reservation
	if err := svc.DB.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Status != models.StatusConclusa {
		t.Errorf("status = %s, want conclusa untouched", stored.Status)
	}
	if stored.Price != 300 {
		t.Errorf("frozen price = %v, want 300 untouched", stored.Price)
	}
}

func TestUpdateValidatesStatusTransition(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.Create(singleForm())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	form := singleForm()
	form.Status = "conclusa"
	if _, err := svc.Update(created.ID, form); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("in_attesa -> conclusa via PUT: err = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateToConclusaFreezesAndInvoices(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.Create(singleForm())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.ChangeStatus(created.ID, models.StatusConfermata); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	form := singleForm()
	form.Status = "conclusa"
	updated, err := svc.Update(created.ID, form)
	if err != nil {
		t.Fatalf("Update to conclusa: %v", err)
	}
	if updated.Status != models.StatusConclusa {
		t.Errorf("status = %s, want conclusa", updated.Status)
	}
	if updated.Price != 300 {
		t.Errorf("frozen price = %v, want 300", updated.Price)
	}

	var inv models.Invoice
	if err := svc.DB.Where("reservation_id = ?", created.ID).First(&inv).Error; err != nil {
		t.Fatalf("closing via PUT must record an invoice like ChangeStatus: %v", err)
	}
	if inv.AmountDue != 250 {
		t.Errorf("invoice amountDue = %v, want 250", inv.AmountDue)
	}
}

func TestChangeStatusEnforcesMachine(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.Create(singleForm())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.ChangeStatus(created.ID, models.StatusConclusa); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("in_attesa -> conclusa: err = %v, want ErrInvalidTransition", err)
	}

	if _, err := svc.ChangeStatus(created.ID, models.StatusConfermata); err != nil {
		t.Fatalf("in_attesa -> confermata: %v", err)
	}
	if _, err := svc.ChangeStatus(created.ID, models.StatusConclusa); err != nil {
		t.Fatalf("confermata -> conclusa: %v", err)
	}
	if _, err := svc.ChangeStatus(created.ID, models.StatusConfermata); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("conclusa is terminal, err = %v", err)
	}
}

func TestConclusaFreezesPriceAndRecordsInvoice(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.Create(singleForm())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.ChangeStatus(created.ID, models.StatusConfermata); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	closed, err := svc.ChangeStatus(created.ID, models.StatusConclusa)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed.Price != 300 {
		t.Errorf("frozen price = %v, want 300", closed.Price)
	}

	var inv models.Invoice
	if err := svc.DB.Where("reservation_id = ?", created.ID).First(&inv).Error; err != nil {
		t.Fatalf("invoice row not recorded: %v", err)
	}
	if inv.Number != 1 {
		t.Errorf("invoice number = %d, want 1", inv.Number)
	}
	if inv.Amount != 300 {
		t.Errorf("invoice amount = %v, want 300", inv.Amount)
	}
	if inv.AmountDue != 250 {
		t.Errorf("invoice amountDue = %v, want 250", inv.AmountDue)
	}
}

func TestCheckAvailabilityAgainstCatalogue(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Create(singleForm()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	result, err := svc.CheckAvailability(
		time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC),
		0,
	)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if len(result.Conflicts[1]) != 1 {
		t.Errorf("conflicts on room 1 = %v, want one", result.Conflicts[1])
	}
	if len(result.AvailableRooms) != 2 {
		t.Errorf("availableRooms = %v, want [2 3]", result.AvailableRooms)
	}
}

func TestCancelledReservationFreesRooms(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.Create(singleForm())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.ChangeStatus(created.ID, models.StatusAnnullata); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	result, err := svc.CheckAvailability(
		time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC),
		0,
	)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if len(result.AvailableRooms) != 3 {
		t.Errorf("availableRooms = %v, want all three after cancellation", result.AvailableRooms)
	}

	list, err := svc.List()
	if err != nil || len(list) != 1 {
		t.Fatalf("cancelled reservation must stay listed, got %v err %v", list, err)
	}
}

func TestPreviewMatchesCreate(t *testing.T) {
	svc := newTestService(t)
	form := singleForm()

	preview := svc.Preview(form)
	created, err := svc.Create(form)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.Price != preview.FinalPrice {
		t.Errorf("persisted price %v differs from previewed final %v", created.Price, preview.FinalPrice)
	}
	if created.PriceWithoutExtras != preview.Base {
		t.Errorf("persisted base %v differs from previewed base %v", created.PriceWithoutExtras, preview.Base)
	}
}

func TestSuggestOccupancy(t *testing.T) {
	svc := newTestService(t)
	total, err := svc.SuggestOccupancy([]int{1, 3})
	if err != nil {
		t.Fatalf("SuggestOccupancy: %v", err)
	}
	if total != 5 {
		t.Errorf("suggested = %d, want 2+3 = 5", total)
	}
	if total, _ := svc.SuggestOccupancy(nil); total != 0 {
		t.Errorf("empty selection = %d, want 0", total)
	}
}

func TestGroupReservationPersistsPerRoomShapes(t *testing.T) {
	svc := newTestService(t)
	form := ReservationForm{
		GroupName:   "Agenzia Blu",
		IsGroup:     true,
		RoomNumbers: []string{"1", "2"},
		CheckIn:     "2024-03-01",
		CheckOut:    "2024-03-03",
		PricingKind: "per_night_per_room",
		RoomRates:   map[string]string{"1": "80", "2": "100"},
		RoomExtras:  map[string]ExtrasForm{"1": {PetAllowed: true}},
	}

	created, err := svc.Create(form)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	var stored models.Reservation
	if err := svc.DB.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.PriceWithoutExtras != 360 {
		t.Errorf("base = %v, want 360", stored.PriceWithoutExtras)
	}
	if stored.PriceWithExtras != 370 {
		t.Errorf("priceWithExtras = %v, want 370", stored.PriceWithExtras)
	}
	if got := stored.ExtrasFor(1); !got.PetAllowed {
		t.Errorf("room 1 extras lost in round trip: %+v", got)
	}
	if got := stored.RateFor(2); got != 100 {
		t.Errorf("rate for room 2 = %v, want 100", got)
	}
}

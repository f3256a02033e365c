package services

import (
	"errors"
	"testing"
	"time"

	"hotel-backoffice/models"
)

func TestExpenseCrud(t *testing.T) {
	svc := NewExpenseService(setupTestDB(t))

	jan := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)
	for _, e := range []models.Expense{
		{Date: &jan, Category: "lavanderia", Amount: 120},
		{Date: &feb, Category: "manutenzione", Amount: -5},
	} {
		exp := e
		if err := svc.Create(&exp); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if exp.Amount < 0 {
			t.Errorf("negative amount persisted: %v", exp.Amount)
		}
	}

	all, err := svc.List(nil, nil)
	if err != nil || len(all) != 2 {
		t.Fatalf("List = %v, err %v, want 2 rows", all, err)
	}

	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	filtered, err := svc.List(&from, nil)
	if err != nil || len(filtered) != 1 || filtered[0].Category != "manutenzione" {
		t.Fatalf("filtered = %v, err %v", filtered, err)
	}

	updated, err := svc.Update(all[0].ID, models.Expense{Category: "bar", Amount: 99, Date: all[0].Date})
	if err != nil || updated.Category != "bar" || updated.Amount != 99 {
		t.Fatalf("Update = %+v, err %v", updated, err)
	}

	if _, err := svc.Update(9999, models.Expense{}); !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("missing id err = %v, want ErrExpenseNotFound", err)
	}

	if err := svc.Delete(all[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rest, _ := svc.List(nil, nil); len(rest) != 1 {
		t.Errorf("after delete len = %d, want 1", len(rest))
	}
}

package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-backoffice/models"
)

var ErrExpenseNotFound = errors.New("expense_not_found")

type ExpenseService struct {
	DB *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{DB: db}
}

func (s *ExpenseService) Create(e *models.Expense) error {
	if e.Amount < 0 {
		e.Amount = 0
	}
	if err := s.DB.Create(e).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// List returns expenses newest first, optionally limited to [from, to].
func (s *ExpenseService) List(from, to *time.Time) ([]models.Expense, error) {
	q := s.DB.Order("date DESC")
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var list []models.Expense
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}
	return list, nil
}

func (s *ExpenseService) Update(id uint, e models.Expense) (*models.Expense, error) {
	var existing models.Expense
	if err := s.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to retrieve expense: %w", err)
	}

	existing.Date = e.Date
	existing.Category = e.Category
	existing.Description = e.Description
	existing.Amount = e.Amount
	if existing.Amount < 0 {
		existing.Amount = 0
	}

	if err := s.DB.Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return &existing, nil
}

func (s *ExpenseService) Delete(id uint) error {
	if err := s.DB.Delete(&models.Expense{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

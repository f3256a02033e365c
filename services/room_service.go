package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-backoffice/models"
)

var ErrRoomNotFound = errors.New("room_not_found")

// RoomService exposes the static room catalogue. The catalogue is seeded from
// configuration; the only mutable path is adding or retiring a room.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByNumber(number int) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Where("room_number = ?", number).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room: %w", err)
	}
	return &room, nil
}

// Delete retires a room by its catalogue number; rooms are addressed by
// number everywhere, never by primary key.
func (s *RoomService) Delete(number int) error {
	result := s.DB.Where("room_number = ?", number).Delete(&models.Room{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

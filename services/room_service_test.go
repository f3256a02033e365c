package services

import (
	"errors"
	"testing"
)

func TestRoomDeleteByNumber(t *testing.T) {
	svc := NewRoomService(setupTestDB(t))

	// seeded room 2 has a primary key different from its number; delete must
	// address the catalogue number
	if err := svc.Delete(2); err != nil {
		t.Fatalf("Delete(2): %v", err)
	}
	if _, err := svc.GetByNumber(2); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("GetByNumber after delete: err = %v, want ErrRoomNotFound", err)
	}

	rooms, err := svc.GetAll()
	if err != nil || len(rooms) != 2 {
		t.Fatalf("GetAll = %v, err %v, want rooms 1 and 3 left", rooms, err)
	}
	for _, room := range rooms {
		if room.Number == 2 {
			t.Errorf("room 2 still listed after delete")
		}
	}

	if err := svc.Delete(99); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Delete(99): err = %v, want ErrRoomNotFound", err)
	}
}

package services

import (
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

// ConflictInfo is the projection of a conflicting reservation handed to the
// UI: enough to render a clickable reference, never the full record.
type ConflictInfo struct {
	ReservationID uint                     `json:"reservationId"`
	Name          string                   `json:"name"`
	Status        models.ReservationStatus `json:"status"`
	CheckIn       time.Time                `json:"checkIn"`
	CheckOut      time.Time                `json:"checkOut"`
}

type AvailabilityResult struct {
	Conflicts      map[int][]ConflictInfo `json:"conflicts"`
	AvailableRooms []int                  `json:"availableRooms"`
}

// AvailabilityResolver computes room availability for a candidate date range
// against the full reservation set. Pure; the check is advisory only — there
// is no transactional guard between the check and a later write.
type AvailabilityResolver struct {
	universe []int
}

// NewAvailabilityResolver takes the catalogue's room numbers as the universe
// availability is resolved against. Order is preserved, duplicates dropped.
func NewAvailabilityResolver(rooms []int) *AvailabilityResolver {
	seen := make(map[int]bool, len(rooms))
	universe := make([]int, 0, len(rooms))
	for _, room := range rooms {
		if seen[room] {
			continue
		}
		seen[room] = true
		universe = append(universe, room)
	}
	return &AvailabilityResolver{universe: universe}
}

// Resolve maps every room to the reservations that clash with the candidate
// range and lists the rooms left free. A degenerate range (checkOut not
// strictly after checkIn) yields nothing available rather than an error: the
// common cause is a user mid-typing a date, and a degenerate range must never
// read as "everything free". excludeID lets a reservation being edited ignore
// its own persisted state.
func (a *AvailabilityResolver) Resolve(candidateStart, candidateEnd time.Time, all []models.Reservation, excludeID uint) AvailabilityResult {
	result := AvailabilityResult{
		Conflicts:      map[int][]ConflictInfo{},
		AvailableRooms: []int{},
	}

	if candidateStart.IsZero() || candidateEnd.IsZero() {
		return result
	}
	start := utils.TruncateToMidnight(candidateStart)
	end := utils.TruncateToMidnight(candidateEnd)
	if !end.After(start) {
		return result
	}

	for i := range all {
		res := &all[i]
		if excludeID != 0 && res.ID == excludeID {
			continue
		}
		if !res.Status.BlocksRooms() {
			continue
		}
		// A malformed stored date skips this one comparison only; one bad
		// historical record must not block the whole resolution.
		if res.CheckIn == nil || res.CheckOut == nil || res.CheckIn.IsZero() || res.CheckOut.IsZero() {
			continue
		}
		existingStart := utils.TruncateToMidnight(*res.CheckIn)
		existingEnd := utils.TruncateToMidnight(*res.CheckOut)

		// Half-open [checkIn, checkOut): touching boundaries do not clash.
		if !(existingStart.Before(end) && existingEnd.After(start)) {
			continue
		}

		info := ConflictInfo{
			ReservationID: res.ID,
			Name:          res.DisplayName(),
			Status:        res.Status,
			CheckIn:       existingStart,
			CheckOut:      existingEnd,
		}
		for _, room := range res.Rooms() {
			result.Conflicts[room] = append(result.Conflicts[room], info)
		}
	}

	for _, room := range a.universe {
		if len(result.Conflicts[room]) == 0 {
			result.AvailableRooms = append(result.AvailableRooms, room)
		}
	}
	return result
}

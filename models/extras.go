package models

// FixedSurcharge is the flat fee applied once per pet and once per crib.
// Priced in exactly one place; never redefine it at a call site.
const FixedSurcharge = 10.0

type ExtrasSet struct {
	ExtraBar     float64 `json:"extraBar"`
	ExtraServizi float64 `json:"extraServizi"`
	PetAllowed   bool    `json:"petAllowed"`
	Crib         bool    `json:"crib"`
}

// Charge totals the extras for one room. cribRequested is the room-level crib
// flag; either source of the flag yields a single surcharge.
func (e ExtrasSet) Charge(cribRequested bool) float64 {
	total := e.ExtraBar + e.ExtraServizi
	if e.PetAllowed {
		total += FixedSurcharge
	}
	if e.Crib || cribRequested {
		total += FixedSurcharge
	}
	return total
}

func (e ExtrasSet) IsZero() bool {
	return e.ExtraBar == 0 && e.ExtraServizi == 0 && !e.PetAllowed && !e.Crib
}

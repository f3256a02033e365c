package services

import (
	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

// PricingSummary is the authoritative monetary breakdown for a reservation,
// draft or persisted.
type PricingSummary struct {
	Nights                   int             `json:"nights"`
	Base                     float64         `json:"base"`
	ExtrasTotal              float64         `json:"extrasTotal"`
	PerRoomExtras            map[int]float64 `json:"perRoomExtras"`
	CalculatedTotal          float64         `json:"calculatedTotal"`
	FinalPrice               float64         `json:"finalPrice"`
	FinalPriceIncludesExtras bool            `json:"finalPriceIncludesExtras"`
	AmountDue                float64         `json:"amountDue"`
}

// PriceInclusionPolicy decides whether a persisted total already bakes in the
// extras. Older and newer write paths disagreed on this and the records were
// never migrated, so the engine has to infer it per record. A heuristic, not
// a guarantee; kept behind a named type so it can be swapped or tested alone.
type PriceInclusionPolicy func(finalPrice, base, extrasTotal float64) bool

// DefaultPriceInclusionPolicy: the saved total includes extras when it sits
// within a cent of base+extras. Exact float equality would misclassify
// virtually every historical record.
func DefaultPriceInclusionPolicy(finalPrice, base, extrasTotal float64) bool {
	return utils.NearlyEqual(finalPrice, base+extrasTotal)
}

// PricingEngine computes nights, base, extras and the reconciled amount due.
// Pure: no side effects, identical output for identical input. Callers write
// the derived fields back to storage themselves.
type PricingEngine struct {
	includesExtras PriceInclusionPolicy
}

func NewPricingEngine() *PricingEngine {
	return &PricingEngine{includesExtras: DefaultPriceInclusionPolicy}
}

func NewPricingEngineWithPolicy(policy PriceInclusionPolicy) *PricingEngine {
	if policy == nil {
		policy = DefaultPriceInclusionPolicy
	}
	return &PricingEngine{includesExtras: policy}
}

func (e *PricingEngine) Summarize(r models.Reservation) PricingSummary {
	s := PricingSummary{PerRoomExtras: map[int]float64{}}

	if r.CheckIn != nil && r.CheckOut != nil {
		s.Nights = utils.NightsBetween(*r.CheckIn, *r.CheckOut)
	}
	nights := float64(s.Nights)
	rooms := r.Rooms()

	s.Base = utils.Round2(utils.ClampMoney(e.basePrice(&r, rooms, nights)))

	if r.IsGroup {
		for _, room := range rooms {
			charge := r.ExtrasFor(room).Charge(r.CribFor(room))
			s.PerRoomExtras[room] = utils.Round2(charge)
			s.ExtrasTotal += charge
		}
	} else {
		charge := r.Extras.Data().Charge(r.Crib)
		if len(rooms) > 0 {
			s.PerRoomExtras[rooms[0]] = utils.Round2(charge)
		}
		s.ExtrasTotal = charge
	}
	s.ExtrasTotal = utils.Round2(s.ExtrasTotal)

	baseAndExtras := utils.Round2(s.Base + s.ExtrasTotal)
	s.CalculatedTotal = baseAndExtras
	if r.PriceWithExtras > s.CalculatedTotal {
		s.CalculatedTotal = r.PriceWithExtras
	}

	switch {
	case r.FinalPriceOverride != nil:
		s.FinalPrice = utils.ClampMoney(*r.FinalPriceOverride)
	case r.Price > 0:
		s.FinalPrice = r.Price
	default:
		s.FinalPrice = s.CalculatedTotal
	}

	s.FinalPriceIncludesExtras = e.includesExtras(s.FinalPrice, s.Base, s.ExtrasTotal)

	basis := s.FinalPrice
	if !s.FinalPriceIncludesExtras && s.ExtrasTotal > 0 {
		basis += s.ExtrasTotal
	}
	s.AmountDue = utils.Round2(basis - r.Deposit)
	if s.AmountDue < 0 {
		s.AmountDue = 0
	}
	return s
}

// basePrice branches on the pricing descriptor. Legacy records have none and
// fall back to the stored price-without-extras; that check comes first,
// otherwise every old record prices to a spurious zero.
func (e *PricingEngine) basePrice(r *models.Reservation, rooms []int, nights float64) float64 {
	mode := r.Mode()
	if mode == nil {
		return r.PriceWithoutExtras
	}

	if r.IsGroup {
		switch mode.Kind {
		case models.PricingPerNightPerRoom:
			var base float64
			for _, room := range rooms {
				rate, ok := mode.Rates[room]
				if !ok {
					rate = r.RateFor(room)
				}
				base += rate * nights
			}
			return base
		case models.PricingPerNightUniform:
			return mode.UniformRate * nights * float64(len(rooms))
		case models.PricingTotalForStay:
			return mode.TotalForStay
		}
		return 0
	}

	switch mode.Kind {
	case models.PricingPerNight:
		return mode.PricePerNight * nights
	case models.PricingTotal:
		// A lump total for the stay; nights are not applied again.
		return mode.TotalForStay
	}
	return 0
}

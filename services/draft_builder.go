package services

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

// ExtrasForm mirrors the extras block as the frontend sends it: money fields
// arrive as strings and may be empty.
type ExtrasForm struct {
	ExtraBar     string `json:"extraBar"`
	ExtraServizi string `json:"extraServizi"`
	PetAllowed   bool   `json:"petAllowed"`
	Crib         bool   `json:"crib"`
}

// ReservationForm is raw UI form state: strings everywhere, string-keyed
// per-room maps, scalar or per-room blocks depending on isGroup.
type ReservationForm struct {
	GuestName string `json:"guestName"`
	GroupName string `json:"groupName"`
	IsGroup   bool   `json:"isGroup"`

	RoomNumbers []string `json:"roomNumbers"`

	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`

	PricingKind   string            `json:"pricingKind"`
	PricePerNight string            `json:"pricePerNight"`
	TotalForStay  string            `json:"totalForStay"`
	UniformRate   string            `json:"uniformRate"`
	RoomRates     map[string]string `json:"roomRates"`

	Extras     ExtrasForm            `json:"extras"`
	RoomExtras map[string]ExtrasForm `json:"roomExtras"`
	Crib       bool                  `json:"crib"`
	RoomCribs  map[string]bool       `json:"roomCribs"`

	Deposit            string `json:"deposit"`
	Price              string `json:"price"`
	FinalPriceOverride string `json:"finalPriceOverride"`
	NumGuests          string `json:"numGuests"`
	Status             string `json:"status"`
}

// ReservationDraftBuilder normalizes transient form state into the canonical
// reservation shape the pricing engine and the write path both consume. One
// parsing path means the live preview and the saved record cannot diverge.
type ReservationDraftBuilder struct{}

func NewReservationDraftBuilder() *ReservationDraftBuilder {
	return &ReservationDraftBuilder{}
}

func (b *ReservationDraftBuilder) BuildReservation(form ReservationForm) models.Reservation {
	r := models.Reservation{
		GuestName: strings.TrimSpace(form.GuestName),
		GroupName: strings.TrimSpace(form.GroupName),
		IsGroup:   form.IsGroup,
		Deposit:   utils.ParseMoney(form.Deposit),
		Price:     utils.ParseMoney(form.Price),
		Crib:      form.Crib,
		NumGuests: parseCount(form.NumGuests),
		Status:    models.StatusInAttesa,
	}

	if status, ok := models.ParseReservationStatus(form.Status); ok {
		r.Status = status
	}

	rooms := parseRoomNumbers(form.RoomNumbers)
	if !form.IsGroup && len(rooms) > 1 {
		rooms = rooms[:1]
	}
	r.RoomNumbers = datatypes.NewJSONSlice(rooms)

	r.CheckIn = parseFormDate(form.CheckIn)
	r.CheckOut = parseFormDate(form.CheckOut)

	mode, roomPrices := b.buildPricingMode(form, rooms)
	if mode != nil {
		jt := datatypes.NewJSONType(*mode)
		r.PricingMode = &jt
	}
	r.RoomPrices = datatypes.NewJSONType(roomPrices)

	if form.IsGroup {
		roomExtras := make(map[int]models.ExtrasSet, len(rooms))
		roomCribs := make(map[int]bool, len(rooms))
		for _, room := range rooms {
			roomExtras[room] = buildExtras(form.RoomExtras[strconv.Itoa(room)])
			roomCribs[room] = form.RoomCribs[strconv.Itoa(room)]
		}
		r.RoomExtras = datatypes.NewJSONType(roomExtras)
		r.RoomCribs = datatypes.NewJSONType(roomCribs)
	} else {
		r.Extras = datatypes.NewJSONType(buildExtras(form.Extras))
	}

	if v := strings.TrimSpace(form.FinalPriceOverride); v != "" {
		override := utils.ParseMoney(v)
		r.FinalPriceOverride = &override
	}

	return r
}

// buildPricingMode resolves the tagged pricing descriptor once, here at the
// boundary, so nothing downstream re-checks which shape it is dealing with.
// It also derives the operative per-night rate table.
func (b *ReservationDraftBuilder) buildPricingMode(form ReservationForm, rooms []int) (*models.PricingMode, map[int]float64) {
	kind := models.PricingKind(strings.TrimSpace(strings.ToLower(form.PricingKind)))
	roomPrices := make(map[int]float64, len(rooms))

	if form.IsGroup {
		switch kind {
		case models.PricingPerNightPerRoom:
			rates := make(map[int]float64, len(rooms))
			for _, room := range rooms {
				rate := utils.ParseMoney(form.RoomRates[strconv.Itoa(room)])
				rates[room] = rate
				roomPrices[room] = rate
			}
			return &models.PricingMode{Kind: kind, Rates: rates}, roomPrices
		case models.PricingPerNightUniform:
			rate := utils.ParseMoney(form.UniformRate)
			for _, room := range rooms {
				roomPrices[room] = rate
			}
			return &models.PricingMode{Kind: kind, UniformRate: rate}, roomPrices
		case models.PricingTotalForStay:
			return &models.PricingMode{Kind: kind, TotalForStay: utils.ParseMoney(form.TotalForStay)}, roomPrices
		}
		return nil, roomPrices
	}

	switch kind {
	case models.PricingPerNight:
		rate := utils.ParseMoney(form.PricePerNight)
		for _, room := range rooms {
			roomPrices[room] = rate
		}
		return &models.PricingMode{Kind: kind, PricePerNight: rate}, roomPrices
	case models.PricingTotal:
		return &models.PricingMode{Kind: kind, TotalForStay: utils.ParseMoney(form.TotalForStay)}, roomPrices
	}
	return nil, roomPrices
}

func buildExtras(form ExtrasForm) models.ExtrasSet {
	return models.ExtrasSet{
		ExtraBar:     utils.ParseMoney(form.ExtraBar),
		ExtraServizi: utils.ParseMoney(form.ExtraServizi),
		PetAllowed:   form.PetAllowed,
		Crib:         form.Crib,
	}
}

// parseRoomNumbers keeps parseable keys only, unique, in submission order.
func parseRoomNumbers(raw []string) []int {
	seen := make(map[int]bool, len(raw))
	rooms := make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || seen[n] {
			continue
		}
		seen[n] = true
		rooms = append(rooms, n)
	}
	return rooms
}

func parseFormDate(raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		return nil
	}
	t = utils.TruncateToMidnight(t)
	return &t
}

func parseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

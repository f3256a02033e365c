package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

type ChangeStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type SuggestOccupancyPayload struct {
	RoomNumbers []int `json:"roomNumbers" binding:"required"`
}

func (rc *ReservationController) Create(c *gin.Context) {
	var form services.ReservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	r, err := rc.Svc.Create(form)
	if err != nil {
		utils.JSONError(c, reservationErrStatus(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, r)
}

func (rc *ReservationController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var form services.ReservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	r, err := rc.Svc.Update(id, form)
	if err != nil {
		utils.JSONError(c, reservationErrStatus(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}

func (rc *ReservationController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	r, err := rc.Svc.Get(id)
	if err != nil {
		utils.JSONError(c, reservationErrStatus(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}

func (rc *ReservationController) List(c *gin.Context) {
	list, err := rc.Svc.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (rc *ReservationController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := rc.Svc.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (rc *ReservationController) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload ChangeStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	status, ok := models.ParseReservationStatus(payload.Status)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "unknown status: "+payload.Status)
		return
	}

	r, err := rc.Svc.ChangeStatus(id, status)
	if err != nil {
		utils.JSONError(c, reservationErrStatus(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}

// Preview prices a draft without persisting anything. Same builder, same
// engine as Create.
func (rc *ReservationController) Preview(c *gin.Context) {
	var form services.ReservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rc.Svc.Preview(form))
}

// Availability resolves free rooms for ?check_in=&check_out=&exclude=.
// Unparseable dates fall through as a degenerate range: nothing available.
func (rc *ReservationController) Availability(c *gin.Context) {
	checkIn, errIn := utils.ParseDate(c.Query("check_in"))
	checkOut, errOut := utils.ParseDate(c.Query("check_out"))
	if errIn != nil || errOut != nil {
		utils.JSONSuccess(c, http.StatusOK, services.AvailabilityResult{
			Conflicts:      map[int][]services.ConflictInfo{},
			AvailableRooms: []int{},
		})
		return
	}

	var excludeID uint
	if raw := c.Query("exclude"); raw != "" {
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			excludeID = uint(n)
		}
	}

	result, err := rc.Svc.CheckAvailability(checkIn, checkOut, excludeID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

func (rc *ReservationController) SuggestOccupancy(c *gin.Context) {
	var payload SuggestOccupancyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	total, err := rc.Svc.SuggestOccupancy(payload.RoomNumbers)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"suggestedGuests": total})
}

func paramID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id: "+raw)
		return 0, false
	}
	return uint(n), true
}

func reservationErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrReservationClosed),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrNoRooms),
		errors.Is(err, services.ErrUnknownRoom):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

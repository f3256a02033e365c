package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type RoomController struct {
	Svc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Svc: svc}
}

func (rc *RoomController) List(c *gin.Context) {
	rooms, err := rc.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) Get(c *gin.Context) {
	number, ok := paramRoomNumber(c)
	if !ok {
		return
	}
	room, err := rc.Svc.GetByNumber(number)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) Create(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if err := rc.Svc.Create(&room); err != nil {
		if isDuplicateErr(err) {
			utils.JSONError(c, http.StatusConflict, "room number already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (rc *RoomController) Delete(c *gin.Context) {
	number, ok := paramRoomNumber(c)
	if !ok {
		return
	}
	if err := rc.Svc.Delete(number); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": number})
}

func paramRoomNumber(c *gin.Context) (int, bool) {
	raw := c.Param("number")
	n, err := strconv.Atoi(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room number: "+raw)
		return 0, false
	}
	return n, true
}

func isDuplicateErr(err error) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate") || strings.Contains(lower, "unique")
}

package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type ExpenseController struct {
	Svc *services.ExpenseService
}

func NewExpenseController(svc *services.ExpenseService) *ExpenseController {
	return &ExpenseController{Svc: svc}
}

type ExpensePayload struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (p ExpensePayload) toModel() models.Expense {
	e := models.Expense{
		Category:    p.Category,
		Description: p.Description,
		Amount:      p.Amount,
	}
	if t, err := utils.ParseDate(p.Date); err == nil {
		t = utils.TruncateToMidnight(t)
		e.Date = &t
	}
	return e
}

func (ec *ExpenseController) Create(c *gin.Context) {
	var payload ExpensePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	e := payload.toModel()
	if err := ec.Svc.Create(&e); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, e)
}

func (ec *ExpenseController) List(c *gin.Context) {
	var from, to *time.Time
	if t, err := utils.ParseDate(c.Query("from")); err == nil {
		from = &t
	}
	if t, err := utils.ParseDate(c.Query("to")); err == nil {
		to = &t
	}

	list, err := ec.Svc.List(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ec *ExpenseController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload ExpensePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	e, err := ec.Svc.Update(id, payload.toModel())
	if err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, e)
}

func (ec *ExpenseController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ec.Svc.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

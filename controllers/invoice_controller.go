package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type InvoiceController struct {
	Svc *services.InvoiceService
}

func NewInvoiceController(svc *services.InvoiceService) *InvoiceController {
	return &InvoiceController{Svc: svc}
}

func (ic *InvoiceController) List(c *gin.Context) {
	list, err := ic.Svc.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ic *InvoiceController) GetByReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	inv, err := ic.Svc.GetByReservation(id)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, inv)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/services"
	"wedding-backend/utils"
)

type PaymentMethodController struct {
	PaymentSvc PaymentMethodStore
}

func NewPaymentMethodController(svc PaymentMethodStore) *PaymentMethodController {
	return &PaymentMethodController{PaymentSvc: svc}
}

func (ctrl *PaymentMethodController) List(c *gin.Context) {
	list, err := ctrl.PaymentSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, "payment methods", err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *PaymentMethodController) Create(c *gin.Context) {
	var payload services.PaymentMethodInput
	if !bindJSON(c, &payload) {
		return
	}
	id, err := ctrl.PaymentSvc.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create payment method", err, "")
		return
	}
	utils.JSONCreated(c, id, "Payment method created successfully")
}

func (ctrl *PaymentMethodController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload services.PaymentMethodInput
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctrl.PaymentSvc.Update(c.Request.Context(), id, payload); err != nil {
		respondError(c, "update payment method", err, "Payment method not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Payment method updated successfully")
}

func (ctrl *PaymentMethodController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.PaymentSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete payment method", err, "Payment method not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Payment method deleted successfully")
}

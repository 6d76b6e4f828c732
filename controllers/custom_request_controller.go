package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/realtime"
	"wedding-backend/services"
	"wedding-backend/utils"
)

type CustomRequestController struct {
	RequestSvc CustomRequestStore
	InvoiceSvc InvoiceBuilder
	Events     Publisher
}

func NewCustomRequestController(requests CustomRequestStore, invoices InvoiceBuilder, events Publisher) *CustomRequestController {
	return &CustomRequestController{RequestSvc: requests, InvoiceSvc: invoices, Events: publisherOrNop(events)}
}

func (ctrl *CustomRequestController) Create(c *gin.Context) {
	var payload services.CustomRequestInput
	if !bindJSON(c, &payload) {
		return
	}
	if payload.MissingRequired() {
		utils.JSONMessage(c, http.StatusBadRequest, "Missing required fields: name, email, phone, wedding_date")
		return
	}

	req, err := ctrl.RequestSvc.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create custom request", err, "")
		return
	}
	ctrl.Events.Publish(realtime.EventCustomRequestCreated, req)
	utils.JSONCreated(c, req.ID, "Custom request submitted successfully")
}

// Quote prices a services string the same way the admin list does.
func (ctrl *CustomRequestController) Quote(c *gin.Context) {
	var payload services.QuoteInput
	if !bindJSON(c, &payload) {
		return
	}
	c.JSON(http.StatusOK, ctrl.RequestSvc.Quote(c.Request.Context(), payload.ServicesText()))
}

func (ctrl *CustomRequestController) List(c *gin.Context) {
	f := listFilter(c)
	requests, total, err := ctrl.RequestSvc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, "custom requests", err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"requests":   requests,
		"pagination": utils.NewPagination(f.Page, f.Limit, total),
	})
}

func (ctrl *CustomRequestController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, err := ctrl.RequestSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "custom request detail", err, "Custom request not found")
		return
	}
	c.JSON(http.StatusOK, req)
}

func (ctrl *CustomRequestController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload services.StatusInput
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctrl.RequestSvc.UpdateStatus(c.Request.Context(), id, payload.Status); err != nil {
		respondError(c, "update custom request status", err, "Custom request not found")
		return
	}
	ctrl.Events.Publish(realtime.EventCustomRequestStatusUpdated, gin.H{"id": id, "status": payload.Status})
	utils.JSONMessage(c, http.StatusOK, "Custom request status updated successfully")
}

func (ctrl *CustomRequestController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.RequestSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete custom request", err, "Custom request not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Custom request deleted successfully")
}

func (ctrl *CustomRequestController) Invoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	pmID, err := services.ParseOptionalID(c.Query("payment_method_id"))
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid payment_method_id")
		return
	}
	inv, err := ctrl.InvoiceSvc.ForCustomRequest(c.Request.Context(), id, pmID)
	if err != nil {
		respondError(c, "custom request invoice", err, "Custom request not found")
		return
	}
	c.JSON(http.StatusOK, inv)
}

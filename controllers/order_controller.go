package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/realtime"
	"wedding-backend/services"
	"wedding-backend/utils"
)

type OrderController struct {
	OrderSvc   OrderStore
	InvoiceSvc InvoiceBuilder
	Events     Publisher
}

func NewOrderController(orders OrderStore, invoices InvoiceBuilder, events Publisher) *OrderController {
	return &OrderController{OrderSvc: orders, InvoiceSvc: invoices, Events: publisherOrNop(events)}
}

// listFilter reads ?page, ?limit and the comma separated ?status filter.
func listFilter(c *gin.Context) services.ListFilter {
	page, limit := utils.ParsePage(c)
	return services.ListFilter{Page: page, Limit: limit, Statuses: utils.SplitCSV(c.Query("status"))}
}

func (ctrl *OrderController) Create(c *gin.Context) {
	var payload services.OrderInput
	if !bindJSON(c, &payload) {
		return
	}
	order, err := ctrl.OrderSvc.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create order", err, "")
		return
	}
	ctrl.Events.Publish(realtime.EventOrderCreated, order)
	utils.JSONCreated(c, order.ID, "Order created successfully")
}

func (ctrl *OrderController) List(c *gin.Context) {
	f := listFilter(c)
	orders, total, err := ctrl.OrderSvc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, "orders", err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": utils.NewPagination(f.Page, f.Limit, total),
	})
}

func (ctrl *OrderController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := ctrl.OrderSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "order detail", err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateStatus stores any status string; see models.IsKnownStatus.
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload services.StatusInput
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctrl.OrderSvc.UpdateStatus(c.Request.Context(), id, payload.Status); err != nil {
		respondError(c, "update order status", err, "Order not found")
		return
	}
	ctrl.Events.Publish(realtime.EventOrderStatusUpdated, gin.H{"id": id, "status": payload.Status})
	utils.JSONMessage(c, http.StatusOK, "Order status updated successfully")
}

func (ctrl *OrderController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.OrderSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete order", err, "Order not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Order deleted successfully")
}

func (ctrl *OrderController) Invoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	pmID, err := services.ParseOptionalID(c.Query("payment_method_id"))
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid payment_method_id")
		return
	}
	inv, err := ctrl.InvoiceSvc.ForOrder(c.Request.Context(), id, pmID)
	if err != nil {
		respondError(c, "order invoice", err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, inv)
}

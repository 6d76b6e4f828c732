package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/realtime"
	"wedding-backend/services"
	"wedding-backend/utils"
)

type ContactController struct {
	ContactSvc ContactStore
	Events     Publisher
}

func NewContactController(svc ContactStore, events Publisher) *ContactController {
	return &ContactController{ContactSvc: svc, Events: publisherOrNop(events)}
}

func (ctrl *ContactController) Create(c *gin.Context) {
	var payload services.ContactInput
	if !bindJSON(c, &payload) {
		return
	}
	msg, err := ctrl.ContactSvc.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "contact message", err, "")
		return
	}
	ctrl.Events.Publish(realtime.EventContactCreated, msg)
	utils.JSONCreated(c, msg.ID, "Message sent successfully")
}

func (ctrl *ContactController) List(c *gin.Context) {
	page, limit := utils.ParsePage(c)
	msgs, total, err := ctrl.ContactSvc.List(c.Request.Context(), services.ListFilter{Page: page, Limit: limit})
	if err != nil {
		respondError(c, "contact messages", err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"messages":   msgs,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

func (ctrl *ContactController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ContactSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete contact message", err, "Contact message not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Contact message deleted successfully")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/services"
	"wedding-backend/utils"
)

// ServiceController serves wedding packages and their attached items.
type ServiceController struct {
	CatalogSvc CatalogStore
}

func NewServiceController(svc CatalogStore) *ServiceController {
	return &ServiceController{CatalogSvc: svc}
}

func (ctrl *ServiceController) List(c *gin.Context) {
	list, err := ctrl.CatalogSvc.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, "services", err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ServiceController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc, err := ctrl.CatalogSvc.GetService(c.Request.Context(), id)
	if err != nil {
		respondError(c, "service detail", err, "Service not found")
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (ctrl *ServiceController) Create(c *gin.Context) {
	var payload services.ServiceInput
	if !bindJSON(c, &payload) {
		return
	}
	id, err := ctrl.CatalogSvc.CreateService(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create service", err, "")
		return
	}
	utils.JSONCreated(c, id, "Service created successfully")
}

func (ctrl *ServiceController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload services.ServiceInput
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctrl.CatalogSvc.UpdateService(c.Request.Context(), id, payload); err != nil {
		respondError(c, "update service", err, "Service not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Service updated successfully")
}

func (ctrl *ServiceController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.CatalogSvc.DeleteService(c.Request.Context(), id); err != nil {
		respondError(c, "delete service", err, "Service not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Service deleted successfully")
}

func (ctrl *ServiceController) ListItems(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := ctrl.CatalogSvc.ListServiceItems(c.Request.Context(), id)
	if err != nil {
		respondError(c, "service items", err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

type addServiceItemPayload struct {
	ItemID uint `json:"item_id" binding:"required"`
	services.ServiceItemInput
}

func (ctrl *ServiceController) AddItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload addServiceItemPayload
	if !bindJSON(c, &payload) {
		return
	}
	in := payload.ServiceItemInput
	in.ItemID = payload.ItemID

	newID, err := ctrl.CatalogSvc.AddServiceItem(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, "add service item", err, "Service not found")
		return
	}
	utils.JSONCreated(c, newID, "Service item added successfully")
}

func (ctrl *ServiceController) UpdateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload services.ServiceItemInput
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctrl.CatalogSvc.UpdateServiceItem(c.Request.Context(), id, payload); err != nil {
		respondError(c, "update service item", err, "Service item not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Service item updated successfully")
}

func (ctrl *ServiceController) DeleteItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.CatalogSvc.DeleteServiceItem(c.Request.Context(), id); err != nil {
		respondError(c, "remove service item", err, "Service item not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Service item removed successfully")
}

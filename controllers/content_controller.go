package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/services"
	"wedding-backend/utils"
)

// ContentController serves home page sections and feature cards.
type ContentController struct {
	ContentSvc ContentStore
}

func NewContentController(svc ContentStore) *ContentController {
	return &ContentController{ContentSvc: svc}
}

// activeOnly is true unless the admin editor asks for ?is_active=false.
func activeOnly(c *gin.Context) bool {
	return c.Query("is_active") != "false"
}

func (ctrl *ContentController) ListSections(c *gin.Context) {
	list, err := ctrl.ContentSvc.ListSections(c.Request.Context(), activeOnly(c))
	if err != nil {
		respondError(c, "content sections", err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ContentController) GetSection(c *gin.Context) {
	sec, err := ctrl.ContentSvc.GetSection(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, "content section", err, "Content section not found")
		return
	}
	c.JSON(http.StatusOK, sec)
}

func (ctrl *ContentController) CreateSection(c *gin.Context) {
	var payload services.ContentSectionInput
	if !bindJSON(c, &payload) {
		return
	}
	id, err := ctrl.ContentSvc.CreateSection(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create content section", err, "")
		return
	}
	utils.JSONCreated(c, id, "Content section created successfully")
}

func (ctrl *ContentController) UpdateSection(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload services.ContentSectionInput
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctrl.ContentSvc.UpdateSection(c.Request.Context(), id, payload); err != nil {
		respondError(c, "update content section", err, "Content section not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Content section updated successfully")
}

func (ctrl *ContentController) DeleteSection(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ContentSvc.DeleteSection(c.Request.Context(), id); err != nil {
		respondError(c, "delete content section", err, "Content section not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Content section deleted successfully")
}

func (ctrl *ContentController) ListFeatures(c *gin.Context) {
	list, err := ctrl.ContentSvc.ListFeatures(c.Request.Context(), activeOnly(c))
	if err != nil {
		respondError(c, "service features", err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ContentController) CreateFeature(c *gin.Context) {
	var payload services.ServiceFeatureInput
	if !bindJSON(c, &payload) {
		return
	}
	id, err := ctrl.ContentSvc.CreateFeature(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create service feature", err, "")
		return
	}
	utils.JSONCreated(c, id, "Service feature created successfully")
}

func (ctrl *ContentController) UpdateFeature(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload services.ServiceFeatureInput
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctrl.ContentSvc.UpdateFeature(c.Request.Context(), id, payload); err != nil {
		respondError(c, "update service feature", err, "Service feature not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Service feature updated successfully")
}

func (ctrl *ContentController) DeleteFeature(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ContentSvc.DeleteFeature(c.Request.Context(), id); err != nil {
		respondError(c, "delete service feature", err, "Service feature not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Service feature deleted successfully")
}

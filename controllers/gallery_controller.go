package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/services"
	"wedding-backend/utils"
)

type GalleryController struct {
	GallerySvc GalleryStore
}

func NewGalleryController(svc GalleryStore) *GalleryController {
	return &GalleryController{GallerySvc: svc}
}

func (ctrl *GalleryController) ListCategories(c *gin.Context) {
	list, err := ctrl.GallerySvc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, "gallery categories", err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *GalleryController) CreateCategory(c *gin.Context) {
	var payload services.GalleryCategoryInput
	if !bindJSON(c, &payload) {
		return
	}
	id, err := ctrl.GallerySvc.CreateCategory(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create gallery category", err, "")
		return
	}
	utils.JSONCreated(c, id, "Gallery category created successfully")
}

func (ctrl *GalleryController) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload services.GalleryCategoryInput
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctrl.GallerySvc.UpdateCategory(c.Request.Context(), id, payload); err != nil {
		respondError(c, "update gallery category", err, "Gallery category not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Gallery category updated successfully")
}

func (ctrl *GalleryController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.GallerySvc.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, "delete gallery category", err, "Gallery category not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Gallery category deleted successfully")
}

// ListImages supports ?category_id= and ?featured=true.
func (ctrl *GalleryController) ListImages(c *gin.Context) {
	categoryID, err := services.ParseOptionalID(c.Query("category_id"))
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid category_id")
		return
	}
	f := services.GalleryFilter{CategoryID: categoryID, FeaturedOnly: c.Query("featured") == "true"}

	list, err := ctrl.GallerySvc.ListImages(c.Request.Context(), f)
	if err != nil {
		respondError(c, "gallery images", err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *GalleryController) GetImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	img, err := ctrl.GallerySvc.GetImage(c.Request.Context(), id)
	if err != nil {
		respondError(c, "gallery image", err, "Gallery image not found")
		return
	}
	c.JSON(http.StatusOK, img)
}

func (ctrl *GalleryController) CreateImage(c *gin.Context) {
	var payload services.GalleryImageInput
	if !bindJSON(c, &payload) {
		return
	}
	id, err := ctrl.GallerySvc.CreateImage(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create gallery image", err, "")
		return
	}
	utils.JSONCreated(c, id, "Gallery image created successfully")
}

func (ctrl *GalleryController) UpdateImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload services.GalleryImageInput
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctrl.GallerySvc.UpdateImage(c.Request.Context(), id, payload); err != nil {
		respondError(c, "update gallery image", err, "Gallery image not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Gallery image updated successfully")
}

func (ctrl *GalleryController) DeleteImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.GallerySvc.DeleteImage(c.Request.Context(), id); err != nil {
		respondError(c, "delete gallery image", err, "Gallery image not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Gallery image deleted successfully")
}

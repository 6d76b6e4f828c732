package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/services"
	"wedding-backend/utils"
)

type ItemController struct {
	ItemSvc ItemStore
}

func NewItemController(svc ItemStore) *ItemController {
	return &ItemController{ItemSvc: svc}
}

func (ctrl *ItemController) List(c *gin.Context) {
	items, err := ctrl.ItemSvc.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, "items", err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctrl *ItemController) Categories(c *gin.Context) {
	cats, err := ctrl.ItemSvc.Categories(c.Request.Context())
	if err != nil {
		respondError(c, "categories", err, "")
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (ctrl *ItemController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := ctrl.ItemSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "item detail", err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ctrl *ItemController) Create(c *gin.Context) {
	var payload services.ItemInput
	if !bindJSON(c, &payload) {
		return
	}
	id, err := ctrl.ItemSvc.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create item", err, "")
		return
	}
	utils.JSONCreated(c, id, "Item created successfully")
}

func (ctrl *ItemController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload services.ItemInput
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctrl.ItemSvc.Update(c.Request.Context(), id, payload); err != nil {
		respondError(c, "update item", err, "Item not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Item updated successfully")
}

func (ctrl *ItemController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ItemSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete item", err, "Item not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Item deleted successfully")
}

// AddImages accepts one or more files in the "images" field.
func (ctrl *ItemController) AddImages(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		utils.JSONMessage(c, http.StatusBadRequest, "No images uploaded")
		return
	}

	images, err := ctrl.ItemSvc.AddImages(c.Request.Context(), id, form.File["images"])
	if err != nil {
		respondError(c, "upload item images", err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Images uploaded successfully", "images": images})
}

func (ctrl *ItemController) RemoveImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	images, err := ctrl.ItemSvc.RemoveImage(c.Request.Context(), id, c.Param("filename"))
	if err != nil {
		respondError(c, "remove item image", err, "Image not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image removed successfully", "images": images})
}

// UploadController stores a single image for forms that keep a file name
// (service, article, gallery and content images).
type UploadController struct {
	Images ImageSaver
}

func NewUploadController(images ImageSaver) *UploadController {
	return &UploadController{Images: images}
}

func (ctrl *UploadController) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "No image uploaded")
		return
	}
	name, err := ctrl.Images.SaveUpload(fh)
	if err != nil {
		respondError(c, "upload image", err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded successfully", "filename": name, "url": "/uploads/" + name})
}

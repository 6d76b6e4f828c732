package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/services"
	"wedding-backend/utils"
)

// SuratJalanController manages delivery notes. Create and update take a
// multipart form so the crew's reference photos travel with the note.
type SuratJalanController struct {
	NoteSvc SuratJalanStore
}

func NewSuratJalanController(svc SuratJalanStore) *SuratJalanController {
	return &SuratJalanController{NoteSvc: svc}
}

func formFiles(c *gin.Context) services.SuratJalanFiles {
	file := func(field string) *multipart.FileHeader {
		fh, err := c.FormFile(field)
		if err != nil {
			return nil
		}
		return fh
	}
	return services.SuratJalanFiles{
		Decoration: file("decoration_image"),
		Venue:      file("venue_image"),
		Signature:  file("signature_image"),
	}
}

func bindNote(c *gin.Context) (services.SuratJalanInput, bool) {
	var payload services.SuratJalanInput
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONValidationError(c, err)
		return payload, false
	}
	return payload, true
}

func (ctrl *SuratJalanController) List(c *gin.Context) {
	list, err := ctrl.NoteSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, "surat jalan", err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *SuratJalanController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	note, err := ctrl.NoteSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "surat jalan detail", err, "Surat jalan not found")
		return
	}
	c.JSON(http.StatusOK, note)
}

func (ctrl *SuratJalanController) Create(c *gin.Context) {
	payload, ok := bindNote(c)
	if !ok {
		return
	}
	id, err := ctrl.NoteSvc.Create(c.Request.Context(), payload, formFiles(c))
	if err != nil {
		respondError(c, "create surat jalan", err, "")
		return
	}
	utils.JSONCreated(c, id, "Surat jalan created successfully")
}

func (ctrl *SuratJalanController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	payload, ok := bindNote(c)
	if !ok {
		return
	}
	if err := ctrl.NoteSvc.Update(c.Request.Context(), id, payload, formFiles(c)); err != nil {
		respondError(c, "update surat jalan", err, "Surat jalan not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Surat jalan updated successfully")
}

func (ctrl *SuratJalanController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.NoteSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete surat jalan", err, "Surat jalan not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Surat jalan deleted successfully")
}

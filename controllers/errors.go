package controllers

import (
	"errors"
	"log"
	"net/http"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/gin-gonic/gin"

	"wedding-backend/services"
	"wedding-backend/utils"
)

func isForeignKeyError(err error) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	return false
}

// respondError maps service sentinels to the API's flat error shape.
// notFound is the resource specific 404 message.
func respondError(c *gin.Context, op string, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONMessage(c, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrItemNotFound):
		utils.JSONMessage(c, http.StatusNotFound, "Item not found")
	case errors.Is(err, services.ErrServiceNotFound):
		utils.JSONMessage(c, http.StatusNotFound, "Service not found")
	case errors.Is(err, services.ErrPaymentMethodNotFound):
		utils.JSONMessage(c, http.StatusNotFound, "Payment method not found")
	case errors.Is(err, services.ErrItemInUse):
		utils.JSONMessage(c, http.StatusBadRequest, "Cannot delete item that is used in services. Deactivate it instead.")
	case errors.Is(err, services.ErrDuplicateServiceItem):
		utils.JSONMessage(c, http.StatusBadRequest, "Item already exists in this service")
	case errors.Is(err, services.ErrCategoryHasImages):
		utils.JSONMessage(c, http.StatusBadRequest, "Cannot delete category that has images. Deactivate it instead.")
	case errors.Is(err, services.ErrDuplicateSection):
		utils.JSONMessage(c, http.StatusBadRequest, "Section name already exists")
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrInvalidImage),
		errors.Is(err, services.ErrInvalidSelectedItems):
		utils.JSONMessage(c, http.StatusBadRequest, err.Error())
	case isForeignKeyError(err):
		utils.JSONMessage(c, http.StatusBadRequest, "Referenced record does not exist")
	default:
		log.Printf("❌ %s error: %v", op, err)
		utils.JSONDatabaseError(c)
	}
}

// bindJSON binds the body into dst or answers 400.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.JSONValidationError(c, err)
		return false
	}
	return true
}

// pathID reads a numeric path parameter or answers 400.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, ok := utils.ParamID(c, name)
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid id")
	}
	return id, ok
}

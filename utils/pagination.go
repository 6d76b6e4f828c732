package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// ParsePage reads ?page and ?limit. Missing or invalid values fall back to
// page 1 and limit 10; limit is capped at 100.
func ParsePage(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func Offset(page, limit int) int {
	return (page - 1) * limit
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

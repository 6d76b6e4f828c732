package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParamID parses a positive numeric path parameter.
func ParamID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// SplitCSV splits "a, b,,c" into ["a","b","c"].
func SplitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		method := c.Request.Method
		clientIP := c.ClientIP()
		if len(c.Errors) > 0 {
			log.Printf("%s %s %s %d %s errors=%s", method, path, clientIP, status, latency, c.Errors.String())
			return
		}
		log.Printf("%s %s %s %d %s", method, path, clientIP, status, latency)
	}
}

package middlewares

import (
	"time"

	"villa/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger ghi lại mọi request vào file log: method, path, status và thời gian xử lý
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if status >= 500 {
			utils.LogError("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, status, latency)
			return
		}
		utils.LogInfo("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, status, latency)
	}
}

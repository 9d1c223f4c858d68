package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок, в котором клиенту возвращается
// идентификатор запроса
const RequestIDHeader = "X-Request-ID"

// RequestID создает middleware, присваивающее каждому запросу UUID.
// Идентификатор кладется в контекст Gin и дублируется в заголовке ответа,
// что позволяет сопоставлять записи в логах с конкретным запросом.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

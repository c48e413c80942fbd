package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ErrorCode string

const (
	CodePromotionNotFound ErrorCode = "PROMOTION_NOT_FOUND"
	CodePromotionExpired  ErrorCode = "PROMOTION_EXPIRED"
	CodeValidationError   ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	CodeInternalError     ErrorCode = "INTERNAL_ERROR"
)

// Envelope ครอบทุก response (สำเร็จหรือพลาด) ด้วยโครงเดียวกัน
// traceId ออกใหม่ทุก response ใช้ไว้ตามหา log เท่านั้น
type Envelope struct {
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Data       any       `json:"data,omitempty"`
	ErrorCode  ErrorCode `json:"errorCode,omitempty"`
	TraceID    string    `json:"traceId"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
		TraceID:    uuid.NewString(),
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{
		StatusCode: http.StatusCreated,
		Message:    message,
		Data:       data,
		TraceID:    uuid.NewString(),
	})
}

func Error(c *gin.Context, status int, message string, code ErrorCode) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Message:    message,
		ErrorCode:  code,
		TraceID:    uuid.NewString(),
	})
}

func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg, CodeValidationError)
}

func Unauthorized(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, msg, CodeUnauthorized)
}

func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg, CodePromotionNotFound)
}

// ServerError ไม่ส่งรายละเอียด error ภายในออกไป
func ServerError(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, msg, CodeInternalError)
}

package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc envelope chung cho mọi API
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// Meta định nghĩa metadata phân trang cho danh sách
type Meta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ErrorBody định nghĩa phần error của envelope
type ErrorBody struct {
	StatusCode int      `json:"statusCode"`
	Errors     []string `json:"errors"`
	Timestamp  string   `json:"timestamp"`
	Path       string   `json:"path"`
}

// Success trả về response thành công
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithMeta trả về response thành công kèm metadata phân trang
func SuccessWithMeta(c *gin.Context, message string, data interface{}, total int64, totalPages int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta: &Meta{
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func failure(c *gin.Context, statusCode int, message string, errs []string) {
	if len(errs) == 0 {
		errs = []string{message}
	}
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Error: &ErrorBody{
			StatusCode: statusCode,
			Errors:     errs,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Path:       c.Request.URL.Path,
		},
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	failure(c, http.StatusBadRequest, message, nil)
}

// ValidationError trả về response lỗi validation với danh sách lỗi chi tiết
func ValidationError(c *gin.Context, message string, errs []string) {
	failure(c, http.StatusBadRequest, message, errs)
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	failure(c, http.StatusNotFound, "Không tìm thấy", nil)
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	failure(c, http.StatusInternalServerError, "Lỗi server", nil)
}

// Conflict trả về response xung đột dữ liệu
func Conflict(c *gin.Context, message string) {
	failure(c, http.StatusConflict, message, nil)
}

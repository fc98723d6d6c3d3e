package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidEnum   ErrorCode = "INVALID_ENUM"

	// Rate plan errors
	ErrCodeRatePlanNotFound ErrorCode = "RATE_PLAN_NOT_FOUND"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"

	// Room errors
	ErrCodeRoomNotFound ErrorCode = "ROOM_NOT_FOUND"

	// Wizard errors
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeTabBlocked      ErrorCode = "TAB_BLOCKED"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Upload errors
	ErrCodeUploadFailed ErrorCode = "UPLOAD_FAILED"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// Rate plan errors
	ErrRatePlanNotFound = errors.New("rate plan not found")

	// Room errors
	ErrRoomNotFound = errors.New("room not found")

	// Wizard errors
	ErrSessionNotFound = errors.New("wizard session not found")
	ErrUnknownTab      = errors.New("unknown tab")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)

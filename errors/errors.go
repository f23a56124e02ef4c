package errors

import (
	"errors"
	"fmt"
)

// ErrorCode phân loại lỗi trả về cho caller
type ErrorCode string

const (
	// Lookup errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidResult ErrorCode = "INVALID_RESULT"

	// Argument errors
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrCodeInvalidLimit    ErrorCode = "INVALID_LIMIT"
	ErrCodeInvalidDate     ErrorCode = "INVALID_DATE"
	ErrCodeInvalidField    ErrorCode = "INVALID_FIELD"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

// AppError là lỗi của ứng dụng, mang theo mã lỗi
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

func (e *AppError) Unwrap() error {
	return e.Err
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
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra error có mang mã lỗi code không
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// IsNotFound kiểm tra lỗi NOT_FOUND
func IsNotFound(err error) bool {
	return HasCode(err, ErrCodeNotFound)
}

// IsValidation kiểm tra lỗi validation
func IsValidation(err error) bool {
	return HasCode(err, ErrCodeValidation) || HasCode(err, ErrCodeRequiredField) ||
		HasCode(err, ErrCodeInvalidFormat) || HasCode(err, ErrCodeInvalidStatus) ||
		HasCode(err, ErrCodeInvalidResult)
}

// IsInvalidArgument kiểm tra lỗi tham số gọi
func IsInvalidArgument(err error) bool {
	return HasCode(err, ErrCodeInvalidArgument) || HasCode(err, ErrCodeInvalidLimit) ||
		HasCode(err, ErrCodeInvalidDate) || HasCode(err, ErrCodeInvalidField)
}

var (
	// Lookup errors
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrMerchantNotFound    = errors.New("merchant not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceItemNotFound = errors.New("invoice item not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)

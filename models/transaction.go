package models

import (
	"time"
)

// Các result hợp lệ của transaction. Chỉ transaction thành công mới được
// tính vào doanh thu.
const (
	TransactionResultSuccess = "success"
	TransactionResultFailed  = "failed"
)

type Transaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	InvoiceID uint      `json:"invoice_id" validate:"required"`
	Invoice   *Invoice  `json:"invoice,omitempty" gorm:"foreignKey:InvoiceID"`
	Result    string    `json:"result" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsValidTransactionResult kiểm tra result là success hoặc failed
func IsValidTransactionResult(result string) bool {
	return result == TransactionResultSuccess || result == TransactionResultFailed
}

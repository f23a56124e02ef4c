package models

import (
	"time"
)

// Các trạng thái hợp lệ của invoice
const (
	InvoiceStatusShipped   = "shipped"
	InvoiceStatusPending   = "pending"
	InvoiceStatusReturned  = "returned"
	InvoiceStatusCancelled = "cancelled"
)

type Invoice struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Status       string        `json:"status" validate:"required"`
	CustomerID   uint          `json:"customer_id" validate:"required"`
	Customer     *Customer     `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	MerchantID   uint          `json:"merchant_id" validate:"required"`
	Merchant     *Merchant     `json:"merchant,omitempty" gorm:"foreignKey:MerchantID"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	InvoiceItems []InvoiceItem `json:"invoice_items,omitempty" gorm:"foreignKey:InvoiceID"`
	Transactions []Transaction `json:"transactions,omitempty" gorm:"foreignKey:InvoiceID"`
}

// IsValidInvoiceStatus kiểm tra status có thuộc tập status hợp lệ không.
// Chỉ kiểm tra lúc ghi, lúc đọc không suy luận lại.
func IsValidInvoiceStatus(status string) bool {
	switch status {
	case InvoiceStatusShipped, InvoiceStatusPending, InvoiceStatusReturned, InvoiceStatusCancelled:
		return true
	}
	return false
}

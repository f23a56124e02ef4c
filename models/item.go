package models

import (
	"time"
)

type Item struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" validate:"required"`
	Description  string        `json:"description" validate:"required"`
	UnitPrice    int64         `json:"unit_price"` // cents
	MerchantID   uint          `json:"merchant_id" validate:"required"`
	Merchant     *Merchant     `json:"merchant,omitempty" gorm:"foreignKey:MerchantID"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	InvoiceItems []InvoiceItem `json:"invoice_items,omitempty" gorm:"foreignKey:ItemID"`
}

package models

import (
	"time"
)

type Merchant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Items     []Item    `json:"items,omitempty" gorm:"foreignKey:MerchantID"`
	Invoices  []Invoice `json:"invoices,omitempty" gorm:"foreignKey:MerchantID"`
}

package models

import (
	"time"
)

// InvoiceItem là bản ghi nối giữa invoice và item. UnitPrice là giá chụp lại
// tại thời điểm ghi dòng, không phụ thuộc giá hiện tại của item.
type InvoiceItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	InvoiceID uint      `json:"invoice_id" validate:"required"`
	Invoice   *Invoice  `json:"invoice,omitempty" gorm:"foreignKey:InvoiceID"`
	ItemID    uint      `json:"item_id" validate:"required"`
	Item      *Item     `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Quantity  int64     `json:"quantity" validate:"required,gt=0"`
	UnitPrice int64     `json:"unit_price"` // cents
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

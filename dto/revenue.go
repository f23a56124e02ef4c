package dto

import "fmt"

// MerchantRevenue là một dòng kết quả xếp hạng merchant theo doanh thu.
// Revenue tính bằng cent.
type MerchantRevenue struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Revenue int64  `json:"revenue"`
}

// ItemRevenue là một dòng kết quả xếp hạng item theo doanh thu
type ItemRevenue struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Revenue int64  `json:"revenue"`
}

// ItemQuantity là một dòng kết quả xếp hạng item theo số lượng bán
type ItemQuantity struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// MerchantRevenueResponse serialize doanh thu merchant, revenue đã format
type MerchantRevenueResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Revenue string `json:"revenue"`
}

// ItemRevenueResponse serialize doanh thu item, revenue đã format
type ItemRevenueResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Revenue string `json:"revenue"`
}

// DateRevenueResponse serialize doanh thu một ngày của merchant
type DateRevenueResponse struct {
	Revenue string `json:"revenue"`
}

// FormatCents đổi cent sang chuỗi đơn vị tiền với hai chữ số thập phân.
// Tổng luôn được cộng bằng cent, chỉ chia 100 đúng một lần khi serialize.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}

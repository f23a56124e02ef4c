package services

import (
	"time"

	"salesengine/dto"
	"salesengine/errors"
	"salesengine/models"
	"salesengine/services/logger"

	"gorm.io/gorm"
)

// RevenueServiceOptions chứa các dependency của RevenueService
type RevenueServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// RevenueService tính doanh thu và số lượng bán, join qua
// invoices -> invoice_items -> transactions. Chỉ các invoice có ít nhất một
// transaction thành công mới được tính, và chỉ tính một lần cho mỗi invoice
// dù invoice có bao nhiêu transaction thành công đi nữa. Mọi phép cộng đều
// thực hiện bằng cent ngay trong SQL.
type RevenueService struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewRevenueService tạo RevenueService mới
func NewRevenueService(opts RevenueServiceOptions) *RevenueService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RevenueService{
		db:     opts.DB,
		logger: l,
	}
}

// paidInvoiceIDs là subquery lấy id các invoice có transaction thành công
func (s *RevenueService) paidInvoiceIDs() *gorm.DB {
	return s.db.Table("transactions").
		Select("invoice_id").
		Where("result = ?", models.TransactionResultSuccess)
}

func checkLimit(limit int) error {
	if limit < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidLimit, "limit không được âm", nil)
	}
	return nil
}

// TopMerchantsByRevenue xếp hạng merchant theo doanh thu giảm dần, lấy limit
// merchant đầu. Doanh thu bằng nhau thì merchant id nhỏ hơn đứng trước.
func (s *RevenueService) TopMerchantsByRevenue(limit int) ([]dto.MerchantRevenue, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	if limit == 0 {
		return []dto.MerchantRevenue{}, nil
	}

	var rows []dto.MerchantRevenue
	err := s.db.Table("merchants").
		Select("merchants.id, merchants.name, SUM(invoice_items.quantity * invoice_items.unit_price) AS revenue").
		Joins("JOIN invoices ON invoices.merchant_id = merchants.id").
		Joins("JOIN invoice_items ON invoice_items.invoice_id = invoices.id").
		Where("invoices.id IN (?)", s.paidInvoiceIDs()).
		Group("merchants.id").
		Order("revenue DESC, merchants.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		s.logger.Error("Xếp hạng doanh thu merchant thất bại: %v", err)
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}

	if rows == nil {
		rows = []dto.MerchantRevenue{}
	}
	return rows, nil
}

// TopItemsByRevenue xếp hạng item theo doanh thu giảm dần, lấy limit item đầu.
// Doanh thu bằng nhau thì item id nhỏ hơn đứng trước.
func (s *RevenueService) TopItemsByRevenue(limit int) ([]dto.ItemRevenue, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	if limit == 0 {
		return []dto.ItemRevenue{}, nil
	}

	var rows []dto.ItemRevenue
	err := s.db.Table("items").
		Select("items.id, items.name, SUM(invoice_items.quantity * invoice_items.unit_price) AS revenue").
		Joins("JOIN invoice_items ON invoice_items.item_id = items.id").
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.id IN (?)", s.paidInvoiceIDs()).
		Group("items.id").
		Order("revenue DESC, items.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		s.logger.Error("Xếp hạng doanh thu item thất bại: %v", err)
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}

	if rows == nil {
		rows = []dto.ItemRevenue{}
	}
	return rows, nil
}

// TopItemsByQuantitySold xếp hạng item theo tổng số lượng bán giảm dần, lấy
// limit item đầu. Số lượng bằng nhau thì item id nhỏ hơn đứng trước.
func (s *RevenueService) TopItemsByQuantitySold(limit int) ([]dto.ItemQuantity, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	if limit == 0 {
		return []dto.ItemQuantity{}, nil
	}

	var rows []dto.ItemQuantity
	err := s.db.Table("items").
		Select("items.id, items.name, SUM(invoice_items.quantity) AS quantity").
		Joins("JOIN invoice_items ON invoice_items.item_id = items.id").
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.id IN (?)", s.paidInvoiceIDs()).
		Group("items.id").
		Order("quantity DESC, items.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		s.logger.Error("Xếp hạng số lượng bán item thất bại: %v", err)
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}

	if rows == nil {
		rows = []dto.ItemQuantity{}
	}
	return rows, nil
}

// RevenueOnDate tính tổng doanh thu thành công của một merchant trong trọn
// một ngày UTC, tính theo updated_at của invoice. Không có invoice nào khớp
// thì trả về 0, không phải lỗi.
func (s *RevenueService) RevenueOnDate(merchantID uint, date string) (int64, error) {
	day, err := ParseDay(date)
	if err != nil {
		return 0, err
	}

	start := day
	end := day.AddDate(0, 0, 1)

	var revenue int64
	err = s.db.Table("invoice_items").
		Select("COALESCE(SUM(invoice_items.quantity * invoice_items.unit_price), 0)").
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.merchant_id = ?", merchantID).
		Where("invoices.updated_at >= ? AND invoices.updated_at < ?", start, end).
		Where("invoices.id IN (?)", s.paidInvoiceIDs()).
		Scan(&revenue).Error
	if err != nil {
		s.logger.Error("Tính doanh thu theo ngày thất bại: %v", err)
		return 0, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}

	return revenue, nil
}

// ParseDay ép chuỗi ngày (hoặc datetime) sang 00:00:00 UTC của ngày đó
func ParseDay(date string) (time.Time, error) {
	t, err := parseTimestamp(date)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "ngày không hợp lệ: "+date, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

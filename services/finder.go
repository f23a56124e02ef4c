package services

import (
	"strconv"
	"time"

	"salesengine/errors"
	"salesengine/models"

	"gorm.io/gorm"
)

// timestampLayouts là các định dạng thời gian mà finder chấp nhận
var timestampLayouts = []string{
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// Finder tìm entity theo đúng một cặp (field, value) mỗi lần gọi.
// So sánh theo kiểu của field: numeric, text hoặc timestamp.
type Finder struct {
	db *gorm.DB
}

// NewFinder tạo Finder mới
func NewFinder(db *gorm.DB) *Finder {
	return &Finder{db: db}
}

// FindOne tìm bản ghi đầu tiên theo id tăng dần có field bằng value.
// Trả về (false, nil) nếu không có bản ghi nào khớp.
func (f *Finder) FindOne(dest interface{}, fields []models.Field, field, value string) (bool, error) {
	cond, arg, ok, err := buildCondition(fields, field, value)
	if err != nil {
		return false, err
	}
	if !ok {
		// value không ép kiểu được thì coi như không khớp
		return false, nil
	}

	if err := f.db.Where(cond, arg).Order("id ASC").First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return true, nil
}

// FindAll tìm tất cả bản ghi có field bằng value, theo id tăng dần.
// Không khớp bản ghi nào thì dest là slice rỗng, không phải lỗi.
func (f *Finder) FindAll(dest interface{}, fields []models.Field, field, value string) error {
	cond, arg, ok, err := buildCondition(fields, field, value)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := f.db.Where(cond, arg).Order("id ASC").Find(dest).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return nil
}

// lookupField tra field trong registry của entity
func lookupField(fields []models.Field, name string) (models.Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return models.Field{}, false
}

// buildCondition dựng điều kiện WHERE theo kiểu của field.
// ok = false nghĩa là value không ép được sang kiểu của field.
func buildCondition(fields []models.Field, field, value string) (string, interface{}, bool, error) {
	fieldDef, found := lookupField(fields, field)
	if !found {
		return "", nil, false, errors.NewAppError(errors.ErrCodeInvalidField, "field không hỗ trợ tìm kiếm: "+field, nil)
	}

	switch fieldDef.Kind {
	case models.FieldNumeric:
		n, err := parseNumeric(value)
		if err != nil {
			return "", nil, false, nil
		}
		return fieldDef.Name + " = ?", n, true, nil

	case models.FieldTimestamp:
		t, err := parseTimestamp(value)
		if err != nil {
			return "", nil, false, nil
		}
		return fieldDef.Name + " = ?", t, true, nil

	default:
		return fieldDef.Name + " = ?", value, true, nil
	}
}

// parseNumeric ép value sang số, chấp nhận cả số nguyên lẫn thập phân
func parseNumeric(value string) (interface{}, error) {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// parseTimestamp ép value sang time.Time theo các layout hỗ trợ
func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

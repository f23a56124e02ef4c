package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesengine/errors"
	"salesengine/models"
)

func TestBuildCondition(t *testing.T) {
	t.Run("field numeric ép value sang số", func(t *testing.T) {
		cond, arg, ok, err := buildCondition(models.ItemFields, "unit_price", "7507")

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "unit_price = ?", cond)
		assert.Equal(t, int64(7507), arg)
	})

	t.Run("field numeric chấp nhận số thập phân", func(t *testing.T) {
		_, arg, ok, err := buildCondition(models.ItemFields, "unit_price", "75.07")

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 75.07, arg)
	})

	t.Run("value không phải số thì không khớp", func(t *testing.T) {
		_, _, ok, err := buildCondition(models.ItemFields, "unit_price", "abc")

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("field text so sánh chuỗi nguyên văn", func(t *testing.T) {
		cond, arg, ok, err := buildCondition(models.ItemFields, "name", "Item Qui Esse")

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "name = ?", cond)
		assert.Equal(t, "Item Qui Esse", arg)
	})

	t.Run("field timestamp ép value sang time.Time", func(t *testing.T) {
		_, arg, ok, err := buildCondition(models.InvoiceFields, "updated_at", "2012-03-27 14:53:59 UTC")

		assert.NoError(t, err)
		assert.True(t, ok)

		parsed, isTime := arg.(time.Time)
		require.True(t, isTime)
		assert.Equal(t, time.Date(2012, 3, 27, 14, 53, 59, 0, time.UTC), parsed)
	})

	t.Run("timestamp không parse được thì không khớp, không phải lỗi", func(t *testing.T) {
		_, _, ok, err := buildCondition(models.InvoiceFields, "updated_at", "hôm qua")

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("field ngoài registry là lỗi INVALID_FIELD", func(t *testing.T) {
		_, _, _, err := buildCondition(models.ItemFields, "password", "x")

		assert.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidField))
	})
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"datetime kèm timezone", "2012-03-27 14:53:59 UTC", time.Date(2012, 3, 27, 14, 53, 59, 0, time.UTC)},
		{"datetime không timezone", "2012-03-27 14:53:59", time.Date(2012, 3, 27, 14, 53, 59, 0, time.UTC)},
		{"chỉ có ngày", "2012-03-27", time.Date(2012, 3, 27, 0, 0, 0, 0, time.UTC)},
		{"RFC3339", "2012-03-27T14:53:59Z", time.Date(2012, 3, 27, 14, 53, 59, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseTimestamp(tc.value)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got))
		})
	}

	t.Run("chuỗi rác trả về lỗi", func(t *testing.T) {
		_, err := parseTimestamp("not-a-date")
		assert.Error(t, err)
	})
}

func TestFinder_FindOne(t *testing.T) {
	t.Run("trả về bản ghi id nhỏ nhất trong các bản ghi khớp", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		finder := NewFinder(db)

		rows := sqlmock.NewRows([]string{"id", "status", "customer_id", "merchant_id"}).
			AddRow(3, models.InvoiceStatusShipped, 1, 1)

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE status = \$1 ORDER BY id ASC.* LIMIT .*`).
			WillReturnRows(rows)

		var invoice models.Invoice
		found, err := finder.FindOne(&invoice, models.InvoiceFields, "status", "shipped")

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, uint(3), invoice.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("không khớp trả về found=false, không phải lỗi", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		finder := NewFinder(db)

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE status = \$1 ORDER BY id ASC.* LIMIT .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))

		var invoice models.Invoice
		found, err := finder.FindOne(&invoice, models.InvoiceFields, "status", "pending")

		assert.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("timestamp không parse được thì không truy vấn", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		finder := NewFinder(db)

		var invoice models.Invoice
		found, err := finder.FindOne(&invoice, models.InvoiceFields, "created_at", "garbage")

		assert.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFinder_FindAll(t *testing.T) {
	t.Run("trả về mọi bản ghi khớp theo id tăng dần", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		finder := NewFinder(db)

		rows := sqlmock.NewRows([]string{"id", "name", "description", "unit_price", "merchant_id"}).
			AddRow(1, "generic", "a", 100, 1).
			AddRow(4, "generic", "b", 200, 2)

		mock.ExpectQuery(`SELECT \* FROM "items" WHERE name = \$1 ORDER BY id ASC`).
			WillReturnRows(rows)

		items := []models.Item{}
		err := finder.FindAll(&items, models.ItemFields, "name", "generic")

		assert.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, uint(1), items[0].ID)
		assert.Equal(t, uint(4), items[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("không khớp trả về slice rỗng", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		finder := NewFinder(db)

		mock.ExpectQuery(`SELECT \* FROM "items" WHERE name = \$1 ORDER BY id ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		items := []models.Item{}
		err := finder.FindAll(&items, models.ItemFields, "name", "nothing")

		assert.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("field ngoài registry là lỗi", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		finder := NewFinder(db)

		items := []models.Item{}
		err := finder.FindAll(&items, models.ItemFields, "secret", "x")

		assert.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidField))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

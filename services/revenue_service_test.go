package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesengine/errors"
	"salesengine/models"
)

func newMockRevenueService(t *testing.T) (*RevenueService, sqlmock.Sqlmock, *sql.DB) {
	db, mock, sqlDB := newMockDB(t)
	return NewRevenueService(RevenueServiceOptions{DB: db}), mock, sqlDB
}

func TestRevenueService_TopItemsByRevenue(t *testing.T) {
	t.Run("limit âm là lỗi INVALID_LIMIT, không truy vấn", func(t *testing.T) {
		svc, mock, sqlDB := newMockRevenueService(t)
		defer sqlDB.Close()

		rows, err := svc.TopItemsByRevenue(-1)

		assert.Error(t, err)
		assert.Nil(t, rows)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidLimit))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("limit 0 trả về rỗng, không truy vấn", func(t *testing.T) {
		svc, mock, sqlDB := newMockRevenueService(t)
		defer sqlDB.Close()

		rows, err := svc.TopItemsByRevenue(0)

		assert.NoError(t, err)
		assert.Empty(t, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("doanh thu giảm dần, id tăng dần khi hòa", func(t *testing.T) {
		svc, mock, sqlDB := newMockRevenueService(t)
		defer sqlDB.Close()

		// Item 1 có hai line item 100x2 trên cùng invoice, item 2 có một
		// line item 100x2; invoice đó có một transaction failed và một
		// transaction success nên vẫn được tính đúng một lần
		rows := sqlmock.NewRows([]string{"id", "name", "revenue"}).
			AddRow(1, "Item Qui Esse", 400).
			AddRow(2, "Item Autem Minima", 200)

		mock.ExpectQuery(`SELECT items\.id, items\.name, SUM\(invoice_items\.quantity \* invoice_items\.unit_price\) AS revenue FROM "items" .* WHERE invoices\.id IN \(SELECT invoice_id FROM "transactions" WHERE result = \$1\) GROUP BY .* ORDER BY revenue DESC, items\.id ASC LIMIT .*`).
			WillReturnRows(rows)

		top, err := svc.TopItemsByRevenue(2)

		assert.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, uint(1), top[0].ID)
		assert.Equal(t, int64(400), top[0].Revenue)
		assert.Equal(t, uint(2), top[1].ID)
		assert.Equal(t, int64(200), top[1].Revenue)
		assert.GreaterOrEqual(t, top[0].Revenue, top[1].Revenue)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("không có invoice nào đủ điều kiện trả về slice rỗng", func(t *testing.T) {
		svc, mock, sqlDB := newMockRevenueService(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`SELECT items\.id, items\.name, SUM\(.*\) AS revenue FROM "items"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "revenue"}))

		top, err := svc.TopItemsByRevenue(5)

		assert.NoError(t, err)
		assert.NotNil(t, top)
		assert.Empty(t, top)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRevenueService_TopItemsByQuantitySold(t *testing.T) {
	t.Run("xếp theo tổng số lượng bán, không phải doanh thu", func(t *testing.T) {
		svc, mock, sqlDB := newMockRevenueService(t)
		defer sqlDB.Close()

		// Item 1 đứng đầu vì có hai line item qty 2, dù từng line hòa
		// qty với item 2
		rows := sqlmock.NewRows([]string{"id", "name", "quantity"}).
			AddRow(1, "Item Qui Esse", 4).
			AddRow(2, "Item Autem Minima", 2)

		mock.ExpectQuery(`SELECT items\.id, items\.name, SUM\(invoice_items\.quantity\) AS quantity FROM "items" .* ORDER BY quantity DESC, items\.id ASC LIMIT .*`).
			WillReturnRows(rows)

		top, err := svc.TopItemsByQuantitySold(2)

		assert.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, uint(1), top[0].ID)
		assert.Equal(t, int64(4), top[0].Quantity)
		assert.Equal(t, int64(2), top[1].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("limit 0 trả về rỗng", func(t *testing.T) {
		svc, mock, sqlDB := newMockRevenueService(t)
		defer sqlDB.Close()

		top, err := svc.TopItemsByQuantitySold(0)

		assert.NoError(t, err)
		assert.Empty(t, top)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRevenueService_TopMerchantsByRevenue(t *testing.T) {
	t.Run("xếp hạng merchant theo doanh thu", func(t *testing.T) {
		svc, mock, sqlDB := newMockRevenueService(t)
		defer sqlDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "revenue"}).
			AddRow(2, "Klein, Rempel and Jones", 120000).
			AddRow(1, "Schroeder-Jerde", 50000)

		mock.ExpectQuery(`SELECT merchants\.id, merchants\.name, SUM\(invoice_items\.quantity \* invoice_items\.unit_price\) AS revenue FROM "merchants" .* ORDER BY revenue DESC, merchants\.id ASC LIMIT .*`).
			WillReturnRows(rows)

		top, err := svc.TopMerchantsByRevenue(2)

		assert.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, uint(2), top[0].ID)
		assert.Equal(t, int64(120000), top[0].Revenue)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("limit âm là lỗi", func(t *testing.T) {
		svc, mock, sqlDB := newMockRevenueService(t)
		defer sqlDB.Close()

		_, err := svc.TopMerchantsByRevenue(-3)

		assert.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidLimit))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRevenueService_RevenueOnDate(t *testing.T) {
	t.Run("tính doanh thu trong trọn một ngày UTC", func(t *testing.T) {
		svc, mock, sqlDB := newMockRevenueService(t)
		defer sqlDB.Close()

		start := time.Date(2012, 3, 27, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 1)

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(invoice_items\.quantity \* invoice_items\.unit_price\), 0\) FROM "invoice_items"`).
			WithArgs(1, start, end, models.TransactionResultSuccess).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(500))

		revenue, err := svc.RevenueOnDate(1, "2012-03-27")

		assert.NoError(t, err)
		assert.Equal(t, int64(500), revenue)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ngày không có doanh thu trả về 0", func(t *testing.T) {
		svc, mock, sqlDB := newMockRevenueService(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(invoice_items\.quantity \* invoice_items\.unit_price\), 0\) FROM "invoice_items"`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

		revenue, err := svc.RevenueOnDate(1, "2012-03-28")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), revenue)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ngày không parse được là lỗi INVALID_DATE", func(t *testing.T) {
		svc, mock, sqlDB := newMockRevenueService(t)
		defer sqlDB.Close()

		_, err := svc.RevenueOnDate(1, "ngày mai")

		assert.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDate))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestParseDay(t *testing.T) {
	t.Run("chuỗi ngày về 00:00:00 UTC", func(t *testing.T) {
		day, err := ParseDay("2012-03-27")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2012, 3, 27, 0, 0, 0, 0, time.UTC), day)
	})

	t.Run("datetime cũng về đầu ngày", func(t *testing.T) {
		day, err := ParseDay("2012-03-27 14:53:59 UTC")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2012, 3, 27, 0, 0, 0, 0, time.UTC), day)
	})

	t.Run("chuỗi rác là lỗi INVALID_DATE", func(t *testing.T) {
		_, err := ParseDay("not-a-date")

		assert.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDate))
	})
}

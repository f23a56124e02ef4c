package services

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"salesengine/errors"
	"salesengine/models"
)

// newMockDB tạo kết nối gorm với SQL mock phía dưới
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock, *sql.DB) {
	db, mock, sqlDB := newMockDB(t)
	return NewStore(StoreOptions{DB: db}), mock, sqlDB
}

func TestStore_GetMerchant(t *testing.T) {
	t.Run("tìm thấy merchant", func(t *testing.T) {
		store, mock, sqlDB := newMockStore(t)
		defer sqlDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Klein, Rempel and Jones")

		mock.ExpectQuery(`SELECT \* FROM "merchants" WHERE "merchants"\."id" = \$1 ORDER BY .* LIMIT .*`).
			WillReturnRows(rows)

		merchant, err := store.GetMerchant(1)

		assert.NoError(t, err)
		assert.NotNil(t, merchant)
		assert.Equal(t, uint(1), merchant.ID)
		assert.Equal(t, "Klein, Rempel and Jones", merchant.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("không tìm thấy trả về NOT_FOUND", func(t *testing.T) {
		store, mock, sqlDB := newMockStore(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "merchants" WHERE "merchants"\."id" = \$1 ORDER BY .* LIMIT .*`).
			WillReturnError(gorm.ErrRecordNotFound)

		merchant, err := store.GetMerchant(99)

		assert.Error(t, err)
		assert.Nil(t, merchant)
		assert.True(t, errors.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_ListItems(t *testing.T) {
	t.Run("trả về item theo id tăng dần", func(t *testing.T) {
		store, mock, sqlDB := newMockStore(t)
		defer sqlDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "description", "unit_price", "merchant_id"}).
			AddRow(1, "Item Qui Esse", "Nihil autem", 7507, 1).
			AddRow(2, "Item Autem Minima", "Cumque consequuntur", 6709, 1)

		mock.ExpectQuery(`SELECT \* FROM "items" ORDER BY id ASC`).
			WillReturnRows(rows)

		items, err := store.ListItems()

		assert.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, uint(1), items[0].ID)
		assert.Equal(t, uint(2), items[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_CreateCustomer(t *testing.T) {
	t.Run("thiếu first_name không chạm database", func(t *testing.T) {
		store, mock, sqlDB := newMockStore(t)
		defer sqlDB.Close()

		err := store.CreateCustomer(&models.Customer{LastName: "Ondricka"})

		assert.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert thành công", func(t *testing.T) {
		store, mock, sqlDB := newMockStore(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`INSERT INTO "customers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		customer := models.Customer{FirstName: "Joey", LastName: "Ondricka"}
		err := store.CreateCustomer(&customer)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), customer.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_CreateInvoice(t *testing.T) {
	t.Run("status ngoài tập hợp lệ bị từ chối", func(t *testing.T) {
		store, mock, sqlDB := newMockStore(t)
		defer sqlDB.Close()

		err := store.CreateInvoice(&models.Invoice{
			Status:     "teleported",
			CustomerID: 1,
			MerchantID: 1,
		})

		assert.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStatus))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_CreateInvoiceItem(t *testing.T) {
	t.Run("quantity phải lớn hơn 0", func(t *testing.T) {
		store, mock, sqlDB := newMockStore(t)
		defer sqlDB.Close()

		err := store.CreateInvoiceItem(&models.InvoiceItem{
			InvoiceID: 1,
			ItemID:    1,
			Quantity:  0,
			UnitPrice: 100,
		})

		assert.Error(t, err)
		assert.True(t, errors.IsValidation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_CreateTransaction(t *testing.T) {
	t.Run("invoice cha không tồn tại", func(t *testing.T) {
		store, mock, sqlDB := newMockStore(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := store.CreateTransaction(&models.Transaction{
			InvoiceID: 42,
			Result:    models.TransactionResultSuccess,
		})

		assert.Error(t, err)
		assert.True(t, errors.IsValidation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("result ngoài tập hợp lệ bị từ chối", func(t *testing.T) {
		store, mock, sqlDB := newMockStore(t)
		defer sqlDB.Close()

		err := store.CreateTransaction(&models.Transaction{
			InvoiceID: 1,
			Result:    "maybe",
		})

		assert.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidResult))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_InvoiceTransactions(t *testing.T) {
	t.Run("invoice không tồn tại trả về NOT_FOUND", func(t *testing.T) {
		store, mock, sqlDB := newMockStore(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE "invoices"\."id" = \$1 ORDER BY .* LIMIT .*`).
			WillReturnError(gorm.ErrRecordNotFound)

		transactions, err := store.InvoiceTransactions(7)

		assert.Error(t, err)
		assert.Nil(t, transactions)
		assert.True(t, errors.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("trả về transaction của đúng invoice", func(t *testing.T) {
		store, mock, sqlDB := newMockStore(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE "invoices"\."id" = \$1 ORDER BY .* LIMIT .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "customer_id", "merchant_id"}).
				AddRow(7, models.InvoiceStatusShipped, 1, 1))

		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE invoice_id = \$1 ORDER BY id ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "invoice_id", "result"}).
				AddRow(1, 7, models.TransactionResultSuccess).
				AddRow(2, 7, models.TransactionResultFailed))

		transactions, err := store.InvoiceTransactions(7)

		assert.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, models.TransactionResultSuccess, transactions[0].Result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

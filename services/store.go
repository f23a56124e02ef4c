package services

import (
	"salesengine/errors"
	"salesengine/models"
	"salesengine/services/logger"
	"salesengine/validator"

	"gorm.io/gorm"
)

// StoreOptions chứa các dependency của Store
type StoreOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// Store chịu trách nhiệm lưu trữ và truy xuất các entity cùng quan hệ của chúng
type Store struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewStore tạo Store mới
func NewStore(opts StoreOptions) *Store {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &Store{
		db:     opts.DB,
		logger: l,
	}
}

// DB trả về kết nối gorm bên dưới
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) get(dest interface{}, id uint, notFound error) error {
	if err := s.db.First(dest, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewAppError(errors.ErrCodeNotFound, "không tìm thấy bản ghi", notFound)
		}
		return errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return nil
}

func (s *Store) create(entity interface{}) error {
	if err := s.db.Create(entity).Error; err != nil {
		s.logger.Error("Insert thất bại: %v", err)
		return errors.NewAppError(errors.ErrCodeDBError, "lỗi insert database", err)
	}
	return nil
}

// exists kiểm tra bản ghi cha có tồn tại không trước khi insert bản ghi con
func (s *Store) exists(model interface{}, id uint) (bool, error) {
	var count int64
	if err := s.db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return count > 0, nil
}

// --- Customer ---

func (s *Store) CreateCustomer(customer *models.Customer) error {
	if err := validator.ValidateCustomer(customer); err != nil {
		return err
	}
	return s.create(customer)
}

func (s *Store) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.get(&customer, id, errors.ErrCustomerNotFound); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *Store) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("id ASC").Find(&customers).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return customers, nil
}

// CustomerInvoices trả về các invoice thuộc customer
func (s *Store) CustomerInvoices(customerID uint) ([]models.Invoice, error) {
	if _, err := s.GetCustomer(customerID); err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	if err := s.db.Where("customer_id = ?", customerID).Order("id ASC").Find(&invoices).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return invoices, nil
}

// --- Merchant ---

func (s *Store) CreateMerchant(merchant *models.Merchant) error {
	if err := validator.ValidateMerchant(merchant); err != nil {
		return err
	}
	return s.create(merchant)
}

func (s *Store) GetMerchant(id uint) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := s.get(&merchant, id, errors.ErrMerchantNotFound); err != nil {
		return nil, err
	}
	return &merchant, nil
}

func (s *Store) ListMerchants() ([]models.Merchant, error) {
	var merchants []models.Merchant
	if err := s.db.Order("id ASC").Find(&merchants).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return merchants, nil
}

// MerchantItems trả về các item thuộc merchant
func (s *Store) MerchantItems(merchantID uint) ([]models.Item, error) {
	if _, err := s.GetMerchant(merchantID); err != nil {
		return nil, err
	}

	var items []models.Item
	if err := s.db.Where("merchant_id = ?", merchantID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return items, nil
}

// MerchantInvoices trả về các invoice thuộc merchant
func (s *Store) MerchantInvoices(merchantID uint) ([]models.Invoice, error) {
	if _, err := s.GetMerchant(merchantID); err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	if err := s.db.Where("merchant_id = ?", merchantID).Order("id ASC").Find(&invoices).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return invoices, nil
}

// --- Item ---

func (s *Store) CreateItem(item *models.Item) error {
	if err := validator.ValidateItem(item); err != nil {
		return err
	}

	ok, err := s.exists(&models.Merchant{}, item.MerchantID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "merchant không tồn tại", errors.ErrMerchantNotFound)
	}

	return s.create(item)
}

func (s *Store) GetItem(id uint) (*models.Item, error) {
	var item models.Item
	if err := s.get(&item, id, errors.ErrItemNotFound); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListItems() ([]models.Item, error) {
	var items []models.Item
	if err := s.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return items, nil
}

// ItemInvoiceItems trả về các invoice item tham chiếu item
func (s *Store) ItemInvoiceItems(itemID uint) ([]models.InvoiceItem, error) {
	if _, err := s.GetItem(itemID); err != nil {
		return nil, err
	}

	var invoiceItems []models.InvoiceItem
	if err := s.db.Where("item_id = ?", itemID).Order("id ASC").Find(&invoiceItems).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return invoiceItems, nil
}

// ItemMerchant trả về merchant sở hữu item
func (s *Store) ItemMerchant(itemID uint) (*models.Merchant, error) {
	item, err := s.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	return s.GetMerchant(item.MerchantID)
}

// --- Invoice ---

func (s *Store) CreateInvoice(invoice *models.Invoice) error {
	if err := validator.ValidateInvoice(invoice); err != nil {
		return err
	}

	ok, err := s.exists(&models.Customer{}, invoice.CustomerID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "customer không tồn tại", errors.ErrCustomerNotFound)
	}

	ok, err = s.exists(&models.Merchant{}, invoice.MerchantID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "merchant không tồn tại", errors.ErrMerchantNotFound)
	}

	return s.create(invoice)
}

func (s *Store) GetInvoice(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.get(&invoice, id, errors.ErrInvoiceNotFound); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *Store) ListInvoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.Order("id ASC").Find(&invoices).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return invoices, nil
}

// InvoiceTransactions trả về các transaction thuộc invoice
func (s *Store) InvoiceTransactions(invoiceID uint) ([]models.Transaction, error) {
	if _, err := s.GetInvoice(invoiceID); err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.Where("invoice_id = ?", invoiceID).Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return transactions, nil
}

// InvoiceLineItems trả về các invoice item thuộc invoice
func (s *Store) InvoiceLineItems(invoiceID uint) ([]models.InvoiceItem, error) {
	if _, err := s.GetInvoice(invoiceID); err != nil {
		return nil, err
	}

	var invoiceItems []models.InvoiceItem
	if err := s.db.Where("invoice_id = ?", invoiceID).Order("id ASC").Find(&invoiceItems).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return invoiceItems, nil
}

// InvoiceItems trả về các item xuất hiện trên invoice, join qua invoice_items
func (s *Store) InvoiceItems(invoiceID uint) ([]models.Item, error) {
	if _, err := s.GetInvoice(invoiceID); err != nil {
		return nil, err
	}

	var items []models.Item
	err := s.db.
		Joins("JOIN invoice_items ON invoice_items.item_id = items.id").
		Where("invoice_items.invoice_id = ?", invoiceID).
		Order("items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return items, nil
}

// InvoiceCustomer trả về customer của invoice
func (s *Store) InvoiceCustomer(invoiceID uint) (*models.Customer, error) {
	invoice, err := s.GetInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	return s.GetCustomer(invoice.CustomerID)
}

// InvoiceMerchant trả về merchant của invoice
func (s *Store) InvoiceMerchant(invoiceID uint) (*models.Merchant, error) {
	invoice, err := s.GetInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	return s.GetMerchant(invoice.MerchantID)
}

// --- InvoiceItem ---

func (s *Store) CreateInvoiceItem(invoiceItem *models.InvoiceItem) error {
	if err := validator.ValidateInvoiceItem(invoiceItem); err != nil {
		return err
	}

	ok, err := s.exists(&models.Invoice{}, invoiceItem.InvoiceID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "invoice không tồn tại", errors.ErrInvoiceNotFound)
	}

	ok, err = s.exists(&models.Item{}, invoiceItem.ItemID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "item không tồn tại", errors.ErrItemNotFound)
	}

	return s.create(invoiceItem)
}

func (s *Store) GetInvoiceItem(id uint) (*models.InvoiceItem, error) {
	var invoiceItem models.InvoiceItem
	if err := s.get(&invoiceItem, id, errors.ErrInvoiceItemNotFound); err != nil {
		return nil, err
	}
	return &invoiceItem, nil
}

func (s *Store) ListInvoiceItems() ([]models.InvoiceItem, error) {
	var invoiceItems []models.InvoiceItem
	if err := s.db.Order("id ASC").Find(&invoiceItems).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return invoiceItems, nil
}

// InvoiceItemInvoice trả về invoice của invoice item
func (s *Store) InvoiceItemInvoice(invoiceItemID uint) (*models.Invoice, error) {
	invoiceItem, err := s.GetInvoiceItem(invoiceItemID)
	if err != nil {
		return nil, err
	}
	return s.GetInvoice(invoiceItem.InvoiceID)
}

// InvoiceItemItem trả về item của invoice item
func (s *Store) InvoiceItemItem(invoiceItemID uint) (*models.Item, error) {
	invoiceItem, err := s.GetInvoiceItem(invoiceItemID)
	if err != nil {
		return nil, err
	}
	return s.GetItem(invoiceItem.ItemID)
}

// --- Transaction ---

func (s *Store) CreateTransaction(transaction *models.Transaction) error {
	if err := validator.ValidateTransaction(transaction); err != nil {
		return err
	}

	ok, err := s.exists(&models.Invoice{}, transaction.InvoiceID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "invoice không tồn tại", errors.ErrInvoiceNotFound)
	}

	return s.create(transaction)
}

func (s *Store) GetTransaction(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.get(&transaction, id, errors.ErrTransactionNotFound); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *Store) ListTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return transactions, nil
}

// TransactionInvoice trả về invoice của transaction
func (s *Store) TransactionInvoice(transactionID uint) (*models.Invoice, error) {
	transaction, err := s.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}
	return s.GetInvoice(transaction.InvoiceID)
}

// --- Random ---

// Random lấy một bản ghi ngẫu nhiên của entity tương ứng với dest
func (s *Store) Random(dest interface{}) error {
	if err := s.db.Order("RANDOM()").First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewAppError(errors.ErrCodeNotFound, "không có bản ghi nào", nil)
		}
		return errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn database", err)
	}
	return nil
}

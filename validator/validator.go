package validator

import (
	"salesengine/errors"
	"salesengine/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// checkRequired chạy struct validation theo các tag `validate` trên model
func checkRequired(entity interface{}) error {
	if err := validate.Struct(entity); err != nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "thiếu trường bắt buộc", err)
	}
	return nil
}

// ValidateCustomer validate thông tin customer trước khi insert
func ValidateCustomer(customer *models.Customer) error {
	return checkRequired(customer)
}

// ValidateMerchant validate thông tin merchant trước khi insert
func ValidateMerchant(merchant *models.Merchant) error {
	return checkRequired(merchant)
}

// ValidateItem validate thông tin item trước khi insert
func ValidateItem(item *models.Item) error {
	if err := checkRequired(item); err != nil {
		return err
	}

	if item.UnitPrice < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "unit_price không được âm", nil)
	}

	return nil
}

// ValidateInvoice validate thông tin invoice trước khi insert
func ValidateInvoice(invoice *models.Invoice) error {
	if err := checkRequired(invoice); err != nil {
		return err
	}

	if !models.IsValidInvoiceStatus(invoice.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "status không hợp lệ: "+invoice.Status, nil)
	}

	return nil
}

// ValidateInvoiceItem validate thông tin invoice item trước khi insert
func ValidateInvoiceItem(invoiceItem *models.InvoiceItem) error {
	if err := checkRequired(invoiceItem); err != nil {
		return err
	}

	if invoiceItem.Quantity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "quantity phải lớn hơn 0", nil)
	}

	if invoiceItem.UnitPrice < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "unit_price không được âm", nil)
	}

	return nil
}

// ValidateTransaction validate thông tin transaction trước khi insert
func ValidateTransaction(transaction *models.Transaction) error {
	if err := checkRequired(transaction); err != nil {
		return err
	}

	if !models.IsValidTransactionResult(transaction.Result) {
		return errors.NewAppError(errors.ErrCodeInvalidResult, "result không hợp lệ: "+transaction.Result, nil)
	}

	return nil
}

package controllers

import (
	"salesengine/models"
	"salesengine/response"
	"salesengine/services"
	"salesengine/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type InvoiceController struct {
	Store  *services.Store
	Finder *services.Finder
	Redis  *redis.Client
}

func NewInvoiceController(db *gorm.DB, redisCli *redis.Client) InvoiceController {
	return InvoiceController{
		Store:  services.NewStore(services.StoreOptions{DB: db}),
		Finder: services.NewFinder(db),
		Redis:  redisCli,
	}
}

func (ctrl InvoiceController) GetInvoices(c *gin.Context) {
	invoices, err := ctrl.Store.ListInvoices()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, invoices, len(invoices))
}

func (ctrl InvoiceController) GetInvoiceByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoice, err := ctrl.Store.GetInvoice(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, invoice)
}

func (ctrl InvoiceController) CreateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		response.BadRequest(c, "dữ liệu không hợp lệ")
		return
	}

	if err := ctrl.Store.CreateInvoice(&invoice); err != nil {
		handleServiceError(c, err)
		return
	}

	if ctrl.Redis != nil {
		if err := services.InvalidateRankings(c.Request.Context(), ctrl.Redis); err != nil {
			utils.LogError("Không xóa được cache xếp hạng: %v", err)
		}
	}

	response.Created(c, invoice)
}

func (ctrl InvoiceController) FindInvoice(c *gin.Context) {
	field, value, ok := finderQuery(c, models.InvoiceFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	var invoice models.Invoice
	found, err := ctrl.Finder.FindOne(&invoice, models.InvoiceFields, field, value)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !found {
		response.Success(c, nil)
		return
	}
	response.Success(c, invoice)
}

func (ctrl InvoiceController) FindAllInvoices(c *gin.Context) {
	field, value, ok := finderQuery(c, models.InvoiceFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	invoices := []models.Invoice{}
	if err := ctrl.Finder.FindAll(&invoices, models.InvoiceFields, field, value); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, invoices, len(invoices))
}

func (ctrl InvoiceController) RandomInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := ctrl.Store.Random(&invoice); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, invoice)
}

func (ctrl InvoiceController) GetInvoiceTransactions(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	transactions, err := ctrl.Store.InvoiceTransactions(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, transactions, len(transactions))
}

func (ctrl InvoiceController) GetInvoiceLineItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoiceItems, err := ctrl.Store.InvoiceLineItems(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, invoiceItems, len(invoiceItems))
}

func (ctrl InvoiceController) GetInvoiceItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	items, err := ctrl.Store.InvoiceItems(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, items, len(items))
}

func (ctrl InvoiceController) GetInvoiceCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	customer, err := ctrl.Store.InvoiceCustomer(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, customer)
}

func (ctrl InvoiceController) GetInvoiceMerchant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	merchant, err := ctrl.Store.InvoiceMerchant(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, merchant)
}

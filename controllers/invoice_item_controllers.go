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

type InvoiceItemController struct {
	Store  *services.Store
	Finder *services.Finder
	Redis  *redis.Client
}

func NewInvoiceItemController(db *gorm.DB, redisCli *redis.Client) InvoiceItemController {
	return InvoiceItemController{
		Store:  services.NewStore(services.StoreOptions{DB: db}),
		Finder: services.NewFinder(db),
		Redis:  redisCli,
	}
}

func (ctrl InvoiceItemController) GetInvoiceItems(c *gin.Context) {
	invoiceItems, err := ctrl.Store.ListInvoiceItems()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, invoiceItems, len(invoiceItems))
}

func (ctrl InvoiceItemController) GetInvoiceItemByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoiceItem, err := ctrl.Store.GetInvoiceItem(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, invoiceItem)
}

func (ctrl InvoiceItemController) CreateInvoiceItem(c *gin.Context) {
	var invoiceItem models.InvoiceItem
	if err := c.ShouldBindJSON(&invoiceItem); err != nil {
		response.BadRequest(c, "dữ liệu không hợp lệ")
		return
	}

	if err := ctrl.Store.CreateInvoiceItem(&invoiceItem); err != nil {
		handleServiceError(c, err)
		return
	}

	if ctrl.Redis != nil {
		if err := services.InvalidateRankings(c.Request.Context(), ctrl.Redis); err != nil {
			utils.LogError("Không xóa được cache xếp hạng: %v", err)
		}
	}

	response.Created(c, invoiceItem)
}

func (ctrl InvoiceItemController) FindInvoiceItem(c *gin.Context) {
	field, value, ok := finderQuery(c, models.InvoiceItemFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	var invoiceItem models.InvoiceItem
	found, err := ctrl.Finder.FindOne(&invoiceItem, models.InvoiceItemFields, field, value)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !found {
		response.Success(c, nil)
		return
	}
	response.Success(c, invoiceItem)
}

func (ctrl InvoiceItemController) FindAllInvoiceItems(c *gin.Context) {
	field, value, ok := finderQuery(c, models.InvoiceItemFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	invoiceItems := []models.InvoiceItem{}
	if err := ctrl.Finder.FindAll(&invoiceItems, models.InvoiceItemFields, field, value); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, invoiceItems, len(invoiceItems))
}

func (ctrl InvoiceItemController) RandomInvoiceItem(c *gin.Context) {
	var invoiceItem models.InvoiceItem
	if err := ctrl.Store.Random(&invoiceItem); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, invoiceItem)
}

func (ctrl InvoiceItemController) GetInvoiceItemInvoice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoice, err := ctrl.Store.InvoiceItemInvoice(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, invoice)
}

func (ctrl InvoiceItemController) GetInvoiceItemItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := ctrl.Store.InvoiceItemItem(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, item)
}

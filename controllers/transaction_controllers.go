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

type TransactionController struct {
	Store  *services.Store
	Finder *services.Finder
	Redis  *redis.Client
}

func NewTransactionController(db *gorm.DB, redisCli *redis.Client) TransactionController {
	return TransactionController{
		Store:  services.NewStore(services.StoreOptions{DB: db}),
		Finder: services.NewFinder(db),
		Redis:  redisCli,
	}
}

func (ctrl TransactionController) GetTransactions(c *gin.Context) {
	transactions, err := ctrl.Store.ListTransactions()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, transactions, len(transactions))
}

func (ctrl TransactionController) GetTransactionByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	transaction, err := ctrl.Store.GetTransaction(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, transaction)
}

func (ctrl TransactionController) CreateTransaction(c *gin.Context) {
	var transaction models.Transaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		response.BadRequest(c, "dữ liệu không hợp lệ")
		return
	}

	if err := ctrl.Store.CreateTransaction(&transaction); err != nil {
		handleServiceError(c, err)
		return
	}

	if ctrl.Redis != nil {
		if err := services.InvalidateRankings(c.Request.Context(), ctrl.Redis); err != nil {
			utils.LogError("Không xóa được cache xếp hạng: %v", err)
		}
	}

	response.Created(c, transaction)
}

func (ctrl TransactionController) FindTransaction(c *gin.Context) {
	field, value, ok := finderQuery(c, models.TransactionFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	var transaction models.Transaction
	found, err := ctrl.Finder.FindOne(&transaction, models.TransactionFields, field, value)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !found {
		response.Success(c, nil)
		return
	}
	response.Success(c, transaction)
}

func (ctrl TransactionController) FindAllTransactions(c *gin.Context) {
	field, value, ok := finderQuery(c, models.TransactionFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	transactions := []models.Transaction{}
	if err := ctrl.Finder.FindAll(&transactions, models.TransactionFields, field, value); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, transactions, len(transactions))
}

func (ctrl TransactionController) RandomTransaction(c *gin.Context) {
	var transaction models.Transaction
	if err := ctrl.Store.Random(&transaction); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, transaction)
}

func (ctrl TransactionController) GetTransactionInvoice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoice, err := ctrl.Store.TransactionInvoice(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, invoice)
}

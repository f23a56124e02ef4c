package routes

import (
	"salesengine/controllers"
	middlewares "salesengine/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	customerController := controllers.NewCustomerController(db)
	merchantController := controllers.NewMerchantController(db, redisCli)
	itemController := controllers.NewItemController(db, redisCli)
	invoiceController := controllers.NewInvoiceController(db, redisCli)
	invoiceItemController := controllers.NewInvoiceItemController(db, redisCli)
	transactionController := controllers.NewTransactionController(db, redisCli)

	router.Use(middlewares.RequestIDMiddleware())

	v1 := router.Group("/api/v1")

	v1.GET("/customers", customerController.GetCustomers)
	v1.POST("/customers", customerController.CreateCustomer)
	v1.GET("/customers/find", customerController.FindCustomer)
	v1.GET("/customers/find_all", customerController.FindAllCustomers)
	v1.GET("/customers/random", customerController.RandomCustomer)
	v1.GET("/customers/:id", customerController.GetCustomerByID)
	v1.GET("/customers/:id/invoices", customerController.GetCustomerInvoices)

	v1.GET("/merchants", merchantController.GetMerchants)
	v1.POST("/merchants", merchantController.CreateMerchant)
	v1.GET("/merchants/find", merchantController.FindMerchant)
	v1.GET("/merchants/find_all", merchantController.FindAllMerchants)
	v1.GET("/merchants/random", merchantController.RandomMerchant)
	v1.GET("/merchants/most_revenue", merchantController.MostRevenueMerchants)
	v1.GET("/merchants/:id", merchantController.GetMerchantByID)
	v1.GET("/merchants/:id/items", merchantController.GetMerchantItems)
	v1.GET("/merchants/:id/invoices", merchantController.GetMerchantInvoices)
	v1.GET("/merchants/:id/revenue", merchantController.MerchantRevenueByDate)

	v1.GET("/items", itemController.GetItems)
	v1.POST("/items", itemController.CreateItem)
	v1.GET("/items/find", itemController.FindItem)
	v1.GET("/items/find_all", itemController.FindAllItems)
	v1.GET("/items/random", itemController.RandomItem)
	v1.GET("/items/most_revenue", itemController.MostRevenueItems)
	v1.GET("/items/most_items", itemController.MostSoldItems)
	v1.GET("/items/:id", itemController.GetItemByID)
	v1.GET("/items/:id/invoice_items", itemController.GetItemInvoiceItems)
	v1.GET("/items/:id/merchant", itemController.GetItemMerchant)

	v1.GET("/invoices", invoiceController.GetInvoices)
	v1.POST("/invoices", invoiceController.CreateInvoice)
	v1.GET("/invoices/find", invoiceController.FindInvoice)
	v1.GET("/invoices/find_all", invoiceController.FindAllInvoices)
	v1.GET("/invoices/random", invoiceController.RandomInvoice)
	v1.GET("/invoices/:id", invoiceController.GetInvoiceByID)
	v1.GET("/invoices/:id/transactions", invoiceController.GetInvoiceTransactions)
	v1.GET("/invoices/:id/invoice_items", invoiceController.GetInvoiceLineItems)
	v1.GET("/invoices/:id/items", invoiceController.GetInvoiceItems)
	v1.GET("/invoices/:id/customer", invoiceController.GetInvoiceCustomer)
	v1.GET("/invoices/:id/merchant", invoiceController.GetInvoiceMerchant)

	v1.GET("/invoice_items", invoiceItemController.GetInvoiceItems)
	v1.POST("/invoice_items", invoiceItemController.CreateInvoiceItem)
	v1.GET("/invoice_items/find", invoiceItemController.FindInvoiceItem)
	v1.GET("/invoice_items/find_all", invoiceItemController.FindAllInvoiceItems)
	v1.GET("/invoice_items/random", invoiceItemController.RandomInvoiceItem)
	v1.GET("/invoice_items/:id", invoiceItemController.GetInvoiceItemByID)
	v1.GET("/invoice_items/:id/invoice", invoiceItemController.GetInvoiceItemInvoice)
	v1.GET("/invoice_items/:id/item", invoiceItemController.GetInvoiceItemItem)

	v1.GET("/transactions", transactionController.GetTransactions)
	v1.POST("/transactions", transactionController.CreateTransaction)
	v1.GET("/transactions/find", transactionController.FindTransaction)
	v1.GET("/transactions/find_all", transactionController.FindAllTransactions)
	v1.GET("/transactions/random", transactionController.RandomTransaction)
	v1.GET("/transactions/:id", transactionController.GetTransactionByID)
	v1.GET("/transactions/:id/invoice", transactionController.GetTransactionInvoice)
}

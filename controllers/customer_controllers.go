package controllers

import (
	"salesengine/models"
	"salesengine/response"
	"salesengine/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerController struct {
	Store  *services.Store
	Finder *services.Finder
}

func NewCustomerController(db *gorm.DB) CustomerController {
	return CustomerController{
		Store:  services.NewStore(services.StoreOptions{DB: db}),
		Finder: services.NewFinder(db),
	}
}

func (ctrl CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.Store.ListCustomers()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, customers, len(customers))
}

func (ctrl CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	customer, err := ctrl.Store.GetCustomer(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, customer)
}

func (ctrl CustomerController) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		response.BadRequest(c, "dữ liệu không hợp lệ")
		return
	}

	if err := ctrl.Store.CreateCustomer(&customer); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, customer)
}

func (ctrl CustomerController) FindCustomer(c *gin.Context) {
	field, value, ok := finderQuery(c, models.CustomerFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	var customer models.Customer
	found, err := ctrl.Finder.FindOne(&customer, models.CustomerFields, field, value)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !found {
		response.Success(c, nil)
		return
	}
	response.Success(c, customer)
}

func (ctrl CustomerController) FindAllCustomers(c *gin.Context) {
	field, value, ok := finderQuery(c, models.CustomerFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	customers := []models.Customer{}
	if err := ctrl.Finder.FindAll(&customers, models.CustomerFields, field, value); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, customers, len(customers))
}

func (ctrl CustomerController) RandomCustomer(c *gin.Context) {
	var customer models.Customer
	if err := ctrl.Store.Random(&customer); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, customer)
}

func (ctrl CustomerController) GetCustomerInvoices(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoices, err := ctrl.Store.CustomerInvoices(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, invoices, len(invoices))
}

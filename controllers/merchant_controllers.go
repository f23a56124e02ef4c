package controllers

import (
	"salesengine/dto"
	"salesengine/models"
	"salesengine/response"
	"salesengine/services"
	"salesengine/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type MerchantController struct {
	Store   *services.Store
	Finder  *services.Finder
	Revenue *services.RevenueService
	Redis   *redis.Client
}

func NewMerchantController(db *gorm.DB, redisCli *redis.Client) MerchantController {
	return MerchantController{
		Store:   services.NewStore(services.StoreOptions{DB: db}),
		Finder:  services.NewFinder(db),
		Revenue: services.NewRevenueService(services.RevenueServiceOptions{DB: db}),
		Redis:   redisCli,
	}
}

func (ctrl MerchantController) GetMerchants(c *gin.Context) {
	merchants, err := ctrl.Store.ListMerchants()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, merchants, len(merchants))
}

func (ctrl MerchantController) GetMerchantByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	merchant, err := ctrl.Store.GetMerchant(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, merchant)
}

func (ctrl MerchantController) CreateMerchant(c *gin.Context) {
	var merchant models.Merchant
	if err := c.ShouldBindJSON(&merchant); err != nil {
		response.BadRequest(c, "dữ liệu không hợp lệ")
		return
	}

	if err := ctrl.Store.CreateMerchant(&merchant); err != nil {
		handleServiceError(c, err)
		return
	}

	if ctrl.Redis != nil {
		if err := services.InvalidateRankings(c.Request.Context(), ctrl.Redis); err != nil {
			utils.LogError("Không xóa được cache xếp hạng: %v", err)
		}
	}

	response.Created(c, merchant)
}

func (ctrl MerchantController) FindMerchant(c *gin.Context) {
	field, value, ok := finderQuery(c, models.MerchantFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	var merchant models.Merchant
	found, err := ctrl.Finder.FindOne(&merchant, models.MerchantFields, field, value)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !found {
		response.Success(c, nil)
		return
	}
	response.Success(c, merchant)
}

func (ctrl MerchantController) FindAllMerchants(c *gin.Context) {
	field, value, ok := finderQuery(c, models.MerchantFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	merchants := []models.Merchant{}
	if err := ctrl.Finder.FindAll(&merchants, models.MerchantFields, field, value); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, merchants, len(merchants))
}

func (ctrl MerchantController) RandomMerchant(c *gin.Context) {
	var merchant models.Merchant
	if err := ctrl.Store.Random(&merchant); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, merchant)
}

func (ctrl MerchantController) GetMerchantItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	items, err := ctrl.Store.MerchantItems(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, items, len(items))
}

func (ctrl MerchantController) GetMerchantInvoices(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoices, err := ctrl.Store.MerchantInvoices(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, invoices, len(invoices))
}

// MostRevenueMerchants trả về top merchant theo doanh thu, có cache Redis
func (ctrl MerchantController) MostRevenueMerchants(c *gin.Context) {
	quantity, ok := parseQuantityParam(c)
	if !ok {
		return
	}

	cacheKey := services.RankingCacheKey("merchants_revenue", quantity)

	var rows []dto.MerchantRevenue
	if ctrl.Redis != nil {
		if err := services.GetFromRedis(c.Request.Context(), ctrl.Redis, cacheKey, &rows); err != nil {
			utils.LogError("Không đọc được cache xếp hạng: %v", err)
		}
	}

	if len(rows) == 0 {
		var err error
		rows, err = ctrl.Revenue.TopMerchantsByRevenue(quantity)
		if err != nil {
			handleServiceError(c, err)
			return
		}

		if ctrl.Redis != nil && len(rows) > 0 {
			if err := services.SetToRedis(c.Request.Context(), ctrl.Redis, cacheKey, rows, services.RankingCacheTTL); err != nil {
				utils.LogError("Không ghi được cache xếp hạng: %v", err)
			}
		}
	}

	resp := make([]dto.MerchantRevenueResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.MerchantRevenueResponse{
			ID:      row.ID,
			Name:    row.Name,
			Revenue: dto.FormatCents(row.Revenue),
		})
	}
	response.SuccessWithTotal(c, resp, len(resp))
}

// MerchantRevenueByDate trả về doanh thu của merchant trong một ngày
func (ctrl MerchantController) MerchantRevenueByDate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "thiếu tham số date")
		return
	}

	if _, err := ctrl.Store.GetMerchant(id); err != nil {
		handleServiceError(c, err)
		return
	}

	cents, err := ctrl.Revenue.RevenueOnDate(id, date)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.DateRevenueResponse{Revenue: dto.FormatCents(cents)})
}

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

type ItemController struct {
	Store   *services.Store
	Finder  *services.Finder
	Revenue *services.RevenueService
	Redis   *redis.Client
}

func NewItemController(db *gorm.DB, redisCli *redis.Client) ItemController {
	return ItemController{
		Store:   services.NewStore(services.StoreOptions{DB: db}),
		Finder:  services.NewFinder(db),
		Revenue: services.NewRevenueService(services.RevenueServiceOptions{DB: db}),
		Redis:   redisCli,
	}
}

func (ctrl ItemController) GetItems(c *gin.Context) {
	items, err := ctrl.Store.ListItems()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, items, len(items))
}

func (ctrl ItemController) GetItemByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := ctrl.Store.GetItem(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, item)
}

func (ctrl ItemController) CreateItem(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequest(c, "dữ liệu không hợp lệ")
		return
	}

	if err := ctrl.Store.CreateItem(&item); err != nil {
		handleServiceError(c, err)
		return
	}

	if ctrl.Redis != nil {
		if err := services.InvalidateRankings(c.Request.Context(), ctrl.Redis); err != nil {
			utils.LogError("Không xóa được cache xếp hạng: %v", err)
		}
	}

	response.Created(c, item)
}

func (ctrl ItemController) FindItem(c *gin.Context) {
	field, value, ok := finderQuery(c, models.ItemFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	var item models.Item
	found, err := ctrl.Finder.FindOne(&item, models.ItemFields, field, value)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !found {
		response.Success(c, nil)
		return
	}
	response.Success(c, item)
}

func (ctrl ItemController) FindAllItems(c *gin.Context) {
	field, value, ok := finderQuery(c, models.ItemFields)
	if !ok {
		response.BadRequest(c, "cần đúng một cặp field=value")
		return
	}

	items := []models.Item{}
	if err := ctrl.Finder.FindAll(&items, models.ItemFields, field, value); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, items, len(items))
}

func (ctrl ItemController) RandomItem(c *gin.Context) {
	var item models.Item
	if err := ctrl.Store.Random(&item); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, item)
}

func (ctrl ItemController) GetItemInvoiceItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoiceItems, err := ctrl.Store.ItemInvoiceItems(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, invoiceItems, len(invoiceItems))
}

func (ctrl ItemController) GetItemMerchant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	merchant, err := ctrl.Store.ItemMerchant(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, merchant)
}

// MostRevenueItems trả về top item theo doanh thu, có cache Redis
func (ctrl ItemController) MostRevenueItems(c *gin.Context) {
	quantity, ok := parseQuantityParam(c)
	if !ok {
		return
	}

	cacheKey := services.RankingCacheKey("items_revenue", quantity)

	var rows []dto.ItemRevenue
	if ctrl.Redis != nil {
		if err := services.GetFromRedis(c.Request.Context(), ctrl.Redis, cacheKey, &rows); err != nil {
			utils.LogError("Không đọc được cache xếp hạng: %v", err)
		}
	}

	if len(rows) == 0 {
		var err error
		rows, err = ctrl.Revenue.TopItemsByRevenue(quantity)
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

	resp := make([]dto.ItemRevenueResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.ItemRevenueResponse{
			ID:      row.ID,
			Name:    row.Name,
			Revenue: dto.FormatCents(row.Revenue),
		})
	}
	response.SuccessWithTotal(c, resp, len(resp))
}

// MostSoldItems trả về top item theo tổng số lượng bán, có cache Redis
func (ctrl ItemController) MostSoldItems(c *gin.Context) {
	quantity, ok := parseQuantityParam(c)
	if !ok {
		return
	}

	cacheKey := services.RankingCacheKey("items_sold", quantity)

	var rows []dto.ItemQuantity
	if ctrl.Redis != nil {
		if err := services.GetFromRedis(c.Request.Context(), ctrl.Redis, cacheKey, &rows); err != nil {
			utils.LogError("Không đọc được cache xếp hạng: %v", err)
		}
	}

	if len(rows) == 0 {
		var err error
		rows, err = ctrl.Revenue.TopItemsByQuantitySold(quantity)
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

	response.SuccessWithTotal(c, rows, len(rows))
}

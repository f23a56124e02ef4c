package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"salesengine/services/logger"

	"github.com/redis/go-redis/v9"
)

// RankingCacheTTL là thời gian sống của cache xếp hạng
const RankingCacheTTL = 30 * time.Minute

// DefaultWarmLimit là số nhóm được warm sẵn vào cache mỗi đêm
const DefaultWarmLimit = 10

// RankingCacheKey dựng key cache cho một bảng xếp hạng
func RankingCacheKey(kind string, limit int) string {
	return fmt.Sprintf("ranking:%s:%d", kind, limit)
}

// GetFromRedis lấy data từ Redis, parse JSON vào target.
// Cache miss không phải là lỗi, target giữ nguyên.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// SetToRedis lưu value vào Redis dưới dạng JSON với TTL
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// DeleteFromRedis xóa cache Redis theo key
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}

// InvalidateRankings xóa toàn bộ cache xếp hạng, gọi sau khi có bản ghi mới
func InvalidateRankings(ctx context.Context, rdb *redis.Client) error {
	iter := rdb.Scan(ctx, 0, "ranking:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// RankingWarmerOptions chứa các dependency của RankingWarmer
type RankingWarmerOptions struct {
	Revenue *RevenueService
	Redis   *redis.Client
	Logger  logger.Logger
}

// RankingWarmer tính lại các bảng xếp hạng hay dùng và nạp sẵn vào Redis
type RankingWarmer struct {
	revenue *RevenueService
	rdb     *redis.Client
	logger  logger.Logger
}

// NewRankingWarmer tạo RankingWarmer mới
func NewRankingWarmer(opts RankingWarmerOptions) *RankingWarmer {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RankingWarmer{
		revenue: opts.Revenue,
		rdb:     opts.Redis,
		logger:  l,
	}
}

// WarmRankingCaches tính lại ba bảng xếp hạng với limit mặc định và lưu cache
func (w *RankingWarmer) WarmRankingCaches(ctx context.Context) error {
	merchants, err := w.revenue.TopMerchantsByRevenue(DefaultWarmLimit)
	if err != nil {
		return err
	}
	if err := SetToRedis(ctx, w.rdb, RankingCacheKey("merchants_revenue", DefaultWarmLimit), merchants, RankingCacheTTL); err != nil {
		return err
	}

	items, err := w.revenue.TopItemsByRevenue(DefaultWarmLimit)
	if err != nil {
		return err
	}
	if err := SetToRedis(ctx, w.rdb, RankingCacheKey("items_revenue", DefaultWarmLimit), items, RankingCacheTTL); err != nil {
		return err
	}

	quantities, err := w.revenue.TopItemsByQuantitySold(DefaultWarmLimit)
	if err != nil {
		return err
	}
	if err := SetToRedis(ctx, w.rdb, RankingCacheKey("items_sold", DefaultWarmLimit), quantities, RankingCacheTTL); err != nil {
		return err
	}

	w.logger.Info("Đã warm cache xếp hạng với limit %d", DefaultWarmLimit)
	return nil
}

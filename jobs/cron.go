package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// RankingCacheWarmer định nghĩa interface cho việc warm cache xếp hạng
type RankingCacheWarmer interface {
	WarmRankingCaches(ctx context.Context) error
}

var rankingCacheWarmer RankingCacheWarmer

// SetRankingCacheWarmer thiết lập implementation cho RankingCacheWarmer
func SetRankingCacheWarmer(warmer RankingCacheWarmer) {
	rankingCacheWarmer = warmer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang warm cache xếp hạng lúc: %v", now)
		if rankingCacheWarmer == nil {
			log.Printf("Lỗi: RankingCacheWarmer chưa được thiết lập")
			return
		}
		if err := rankingCacheWarmer.WarmRankingCaches(context.Background()); err != nil {
			log.Printf("Lỗi khi warm cache xếp hạng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

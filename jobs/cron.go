package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// MetadataCacheRefresher định nghĩa interface cho việc làm nóng lại cache metadata
type MetadataCacheRefresher interface {
	RefreshMetadataCaches(ctx context.Context) error
}

var metadataCacheRefresher MetadataCacheRefresher

// SetMetadataCacheRefresher thiết lập implementation cho MetadataCacheRefresher
func SetMetadataCacheRefresher(refresher MetadataCacheRefresher) {
	metadataCacheRefresher = refresher
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Làm nóng lại cache dropdown và tiện nghi mỗi giờ, trước khi TTL hết
	_, err := c.AddFunc("0 * * * *", func() {
		if metadataCacheRefresher == nil {
			log.Printf("Lỗi: MetadataCacheRefresher chưa được thiết lập")
			return
		}
		if err := metadataCacheRefresher.RefreshMetadataCaches(context.Background()); err != nil {
			log.Printf("Lỗi khi làm nóng lại cache metadata: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

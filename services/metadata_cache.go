package services

import (
	"context"

	"villa/dto"
	"villa/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// MetadataCacheService làm nóng lại cache dropdown và tiện nghi, dùng cho
// cron định kỳ để cache không bao giờ nguội quá lâu
type MetadataCacheService struct {
	db  *gorm.DB
	rdb *redis.Client
}

// MetadataCacheServiceOptions là tham số khởi tạo MetadataCacheService
type MetadataCacheServiceOptions struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// NewMetadataCacheService tạo MetadataCacheService mới
func NewMetadataCacheService(opts MetadataCacheServiceOptions) *MetadataCacheService {
	return &MetadataCacheService{
		db:  opts.DB,
		rdb: opts.Redis,
	}
}

// RefreshMetadataCaches nạp lại cache dropdown phòng và danh sách tiện nghi
func (s *MetadataCacheService) RefreshMetadataCaches(ctx context.Context) error {
	var data dto.RoomDropdownData

	if err := s.db.Where("is_active = ?", true).Find(&data.RoomTypes).Error; err != nil {
		return err
	}
	if err := s.db.Where("is_active = ?", true).Find(&data.BedTypes).Error; err != nil {
		return err
	}
	if err := s.db.Where("is_active = ?", true).Find(&data.Amenities).Error; err != nil {
		return err
	}
	if err := s.db.Where("is_active = ?", true).Find(&data.PrivacyPolicies).Error; err != nil {
		return err
	}

	if err := SetToRedis(ctx, s.rdb, CacheKeyRoomDropdowns, data, MetadataCacheTTL); err != nil {
		return err
	}

	var amenities []models.Amenity
	if err := s.db.Where("is_active = ?", true).Order("category asc, label asc").Find(&amenities).Error; err != nil {
		return err
	}
	return SetToRedis(ctx, s.rdb, CacheKeyAmenities, amenities, MetadataCacheTTL)
}

package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache key cho metadata dropdown và danh sách phòng
const (
	CacheKeyRoomDropdowns = "settings:room-dropdowns"
	CacheKeyAmenities     = "settings:amenities"
	CacheKeyRoomList      = "rooms:list"
)

// CacheTTL mặc định cho metadata ít thay đổi
const MetadataCacheTTL = 60 * time.Minute

// GetFromRedis lấy data từ Redis, parse JSON vào target. Cache miss không
// phải lỗi: trả về false và target giữ nguyên giá trị zero. Kết quả rỗng
// đã cache vẫn là cache hit
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return false, err
	}
	return true, nil
}

// SetToRedis lưu dữ liệu vào Redis dưới dạng JSON
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

// DeleteFromRedis xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

// InvalidateRoomCaches xóa các cache liên quan đến phòng sau khi ghi
func InvalidateRoomCaches(ctx context.Context, rdb *redis.Client) error {
	return rdb.Del(ctx, CacheKeyRoomList, CacheKeyRoomDropdowns, CacheKeyAmenities).Err()
}

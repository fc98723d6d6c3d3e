package controllers

import (
	"villa/config"
	"villa/dto"
	"villa/models"
	"villa/response"
	"villa/services"

	"github.com/gin-gonic/gin"
)

// GetRoomDropdowns trả về metadata dropdown cho form tạo phòng, có cache
// Redis vì metadata này gần như không đổi
func GetRoomDropdowns(c *gin.Context) {
	var data dto.RoomDropdownData

	if cached, err := services.GetFromRedis(config.Ctx, config.RedisClient, services.CacheKeyRoomDropdowns, &data); err == nil && cached {
		response.Success(c, "Lấy dropdown thành công", data)
		return
	}

	data, err := loadRoomDropdowns()
	if err != nil {
		response.ServerError(c)
		return
	}

	services.SetToRedis(config.Ctx, config.RedisClient, services.CacheKeyRoomDropdowns, data, services.MetadataCacheTTL)
	response.Success(c, "Lấy dropdown thành công", data)
}

// GetAmenities trả về danh sách tiện nghi đang hoạt động
func GetAmenities(c *gin.Context) {
	var amenities []models.Amenity

	if cached, err := services.GetFromRedis(config.Ctx, config.RedisClient, services.CacheKeyAmenities, &amenities); err == nil && cached {
		response.Success(c, "Lấy danh sách tiện nghi thành công", amenities)
		return
	}

	if err := config.DB.Where("is_active = ?", true).Order("category asc, label asc").Find(&amenities).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.SetToRedis(config.Ctx, config.RedisClient, services.CacheKeyAmenities, amenities, services.MetadataCacheTTL)
	response.Success(c, "Lấy danh sách tiện nghi thành công", amenities)
}

// loadRoomDropdowns gom metadata dropdown từ DB
func loadRoomDropdowns() (dto.RoomDropdownData, error) {
	var data dto.RoomDropdownData

	if err := config.DB.Where("is_active = ?", true).Find(&data.RoomTypes).Error; err != nil {
		return data, err
	}
	if err := config.DB.Where("is_active = ?", true).Find(&data.BedTypes).Error; err != nil {
		return data, err
	}
	if err := config.DB.Where("is_active = ?", true).Find(&data.Amenities).Error; err != nil {
		return data, err
	}
	if err := config.DB.Where("is_active = ?", true).Find(&data.PrivacyPolicies).Error; err != nil {
		return data, err
	}
	return data, nil
}

package controllers

import (
	"strconv"

	"villa/config"
	"villa/dto"
	"villa/models"
	"villa/response"
	"villa/services"
	"villa/validator"
	"villa/wizard"

	apperrors "villa/errors"

	"github.com/gin-gonic/gin"
)

// GetAllRooms trả về toàn bộ phòng, có cache Redis cho danh sách ít đổi
func GetAllRooms(c *gin.Context) {
	var data []dto.RoomResponse

	if cached, err := services.GetFromRedis(config.Ctx, config.RedisClient, services.CacheKeyRoomList, &data); err == nil && cached {
		response.Success(c, "Lấy danh sách phòng thành công", data)
		return
	}

	var rooms []models.Room
	if err := config.DB.Order("updated_at desc").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	data = make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		data = append(data, dto.RoomFromModel(room))
	}

	// Cache lỗi không chặn response
	services.SetToRedis(config.Ctx, config.RedisClient, services.CacheKeyRoomList, data, services.MetadataCacheTTL)

	response.Success(c, "Lấy danh sách phòng thành công", data)
}

// GetRoomList trả về danh sách rút gọn id và tên phòng cho dropdown chọn phòng
func GetRoomList(c *gin.Context) {
	var items []dto.RoomListItem
	if err := config.DB.Model(&models.Room{}).
		Select("room_id, name").
		Order("name asc").
		Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, "Lấy danh sách phòng thành công", items)
}

// GetRoomDetail trả về chi tiết một phòng
func GetRoomDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, "Lấy chi tiết phòng thành công", dto.RoomFromModel(room))
}

// CreateRoom tạo phòng mới từ form. Bản nháp phải qua gate validate cuối
func CreateRoom(c *gin.Context) {
	var form dto.RoomForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	report := wizard.ValidateRoomDraft(form)
	if !report.IsValid {
		response.ValidationError(c, "Dữ liệu phòng chưa hợp lệ",
			report.Flatten("basic", "details", "occupancy", "amenities", "images", "pricing"))
		return
	}

	room, err := form.ToModel()
	if err != nil {
		handleRoomError(c, err)
		return
	}

	if err := validator.ValidateRoom(&room); err != nil {
		handleRoomError(c, err)
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, config.RedisClient)
	response.Success(c, "Tạo phòng thành công", dto.RoomFromModel(room))
}

// UpdateRoom cập nhật phòng theo id
func UpdateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var existing models.Room
	if err := config.DB.First(&existing, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var form dto.RoomForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	report := wizard.ValidateRoomDraft(form)
	if !report.IsValid {
		response.ValidationError(c, "Dữ liệu phòng chưa hợp lệ",
			report.Flatten("basic", "details", "occupancy", "amenities", "images", "pricing"))
		return
	}

	room, err := form.ToModel()
	if err != nil {
		handleRoomError(c, err)
		return
	}
	room.RoomID = existing.RoomID
	room.CreatedAt = existing.CreatedAt

	if err := validator.ValidateRoom(&room); err != nil {
		handleRoomError(c, err)
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, config.RedisClient)
	response.Success(c, "Cập nhật phòng thành công", dto.RoomFromModel(room))
}

// DeleteRoom xóa phòng theo id, gỡ liên kết với các gói giá đang áp dụng
func DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Exec("DELETE FROM rate_plan_rooms WHERE room_room_id = ?", room.RoomID).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, config.RedisClient)
	response.Success(c, "Xóa phòng thành công", nil)
}

// handleRoomError quy đổi lỗi nghiệp vụ phòng sang envelope lỗi
func handleRoomError(c *gin.Context, err error) {
	if apperrors.IsAppError(err) {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}
	response.ServerError(c)
}

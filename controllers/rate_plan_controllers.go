package controllers

import (
	"fmt"
	"strconv"

	"villa/config"
	"villa/dto"
	"villa/models"
	"villa/response"
	"villa/services"
	"villa/wizard"

	apperrors "villa/errors"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// RatePlanController gom các handler của gói giá quanh một service
type RatePlanController struct {
	service *services.RatePlanService
	ws      *melody.Melody
}

// NewRatePlanController tạo controller gói giá
func NewRatePlanController(db *gorm.DB, ws *melody.Melody) *RatePlanController {
	return &RatePlanController{
		service: services.NewRatePlanService(services.RatePlanServiceOptions{DB: db}),
		ws:      ws,
	}
}

// handleRatePlanError quy đổi lỗi service sang envelope lỗi tương ứng
func handleRatePlanError(c *gin.Context, err error) {
	switch {
	case err == apperrors.ErrRatePlanNotFound || err == apperrors.ErrRoomNotFound:
		response.NotFound(c)
	case apperrors.IsAppError(err):
		response.BadRequest(c, apperrors.GetAppError(err).Message)
	default:
		response.ServerError(c)
	}
}

// GetAllRatePlans trả về toàn bộ gói giá, endpoint legacy không phân trang
func (ctl *RatePlanController) GetAllRatePlans(c *gin.Context) {
	plans, err := ctl.service.ListAll()
	if err != nil {
		response.ServerError(c)
		return
	}

	data := make([]dto.RatePlanResponse, 0, len(plans))
	for _, plan := range plans {
		data = append(data, dto.RatePlanFromModel(plan))
	}
	response.Success(c, "Lấy danh sách gói giá thành công", data)
}

// ListRatePlans trả về danh sách gói giá theo query descriptor trong body:
// search, lọc loại, trạng thái, phòng áp dụng, phân trang. Kết quả rỗng khi
// có search sẽ kèm gợi ý tên gần nhất nếu tìm được
func (ctl *RatePlanController) ListRatePlans(c *gin.Context) {
	var req dto.ListRatePlansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	plans, total, totalPages, err := ctl.service.List(req)
	if err != nil {
		handleRatePlanError(c, err)
		return
	}

	data := make([]dto.RatePlanResponse, 0, len(plans))
	for _, plan := range plans {
		data = append(data, dto.RatePlanFromModel(plan))
	}

	message := "Lấy danh sách gói giá thành công"
	if len(plans) == 0 && req.Search != "" {
		if suggestion, ok := ctl.suggestRatePlanName(req.Search); ok {
			message = fmt.Sprintf("Không tìm thấy gói giá nào, có phải bạn muốn tìm \"%s\"?", suggestion)
		} else {
			message = "Không tìm thấy gói giá nào"
		}
	}

	response.SuccessWithMeta(c, message, data, total, totalPages)
}

// suggestRatePlanName tìm tên gói giá gần với search nhất để gợi ý lại
func (ctl *RatePlanController) suggestRatePlanName(search string) (string, bool) {
	var names []string
	if err := config.DB.Model(&models.RatePlan{}).Pluck("name", &names).Error; err != nil {
		return "", false
	}
	return services.SuggestClosestName(search, names)
}

// GetRatePlanDetail trả về chi tiết gói giá kèm danh sách phòng áp dụng
func (ctl *RatePlanController) GetRatePlanDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID gói giá không hợp lệ")
		return
	}

	plan, err := ctl.service.GetByID(uint(id))
	if err != nil {
		handleRatePlanError(c, err)
		return
	}
	response.Success(c, "Lấy chi tiết gói giá thành công", dto.RatePlanFromModel(*plan))
}

// CreateRatePlan tạo gói giá mới. Bản nháp phải qua gate validate cuối
// trước khi chạm vào service
func (ctl *RatePlanController) CreateRatePlan(c *gin.Context) {
	var form dto.RatePlanForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	report := wizard.ValidateRatePlanDraft(form)
	if !report.IsValid {
		response.ValidationError(c, "Dữ liệu gói giá chưa hợp lệ",
			report.Flatten("general", "duration", "meals", "policies"))
		return
	}

	plan, err := ctl.service.Create(form)
	if err != nil {
		handleRatePlanError(c, err)
		return
	}

	services.NotifyChange(ctl.ws, services.ChangeEvent{Entity: "rate-plan", Action: "create", ID: plan.RatePlanID})
	response.Success(c, "Tạo gói giá thành công", dto.RatePlanFromModel(*plan))
}

// UpdateRatePlan cập nhật gói giá theo id
func (ctl *RatePlanController) UpdateRatePlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID gói giá không hợp lệ")
		return
	}

	var form dto.RatePlanForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	report := wizard.ValidateRatePlanDraft(form)
	if !report.IsValid {
		response.ValidationError(c, "Dữ liệu gói giá chưa hợp lệ",
			report.Flatten("general", "duration", "meals", "policies"))
		return
	}

	plan, err := ctl.service.Update(uint(id), form)
	if err != nil {
		handleRatePlanError(c, err)
		return
	}

	services.NotifyChange(ctl.ws, services.ChangeEvent{Entity: "rate-plan", Action: "update", ID: plan.RatePlanID})
	response.Success(c, "Cập nhật gói giá thành công", dto.RatePlanFromModel(*plan))
}

// ChangeRatePlanStatus đổi trạng thái Active/Inactive của gói giá
func (ctl *RatePlanController) ChangeRatePlanStatus(c *gin.Context) {
	var req dto.ChangeRatePlanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	plan, err := ctl.service.ChangeStatus(req.RatePlanID, req.NewStatus)
	if err != nil {
		handleRatePlanError(c, err)
		return
	}

	services.NotifyChange(ctl.ws, services.ChangeEvent{Entity: "rate-plan", Action: "change-status", ID: plan.RatePlanID})
	response.Success(c, "Đổi trạng thái gói giá thành công", dto.RatePlanFromModel(*plan))
}

// DeleteRatePlan xóa gói giá theo id
func (ctl *RatePlanController) DeleteRatePlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID gói giá không hợp lệ")
		return
	}

	if err := ctl.service.Delete(uint(id)); err != nil {
		handleRatePlanError(c, err)
		return
	}

	services.NotifyChange(ctl.ws, services.ChangeEvent{Entity: "rate-plan", Action: "delete", ID: uint(id)})
	response.Success(c, "Xóa gói giá thành công", nil)
}

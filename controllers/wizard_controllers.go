package controllers

import (
	"villa/config"
	"villa/dto"
	"villa/response"
	"villa/services"
	"villa/wizard"

	apperrors "villa/errors"

	"github.com/gin-gonic/gin"
)

// RatePlanWizardState là payload trả về của mọi endpoint phiên wizard
type RatePlanWizardState struct {
	SessionID string           `json:"sessionId"`
	Draft     dto.RatePlanForm `json:"draft"`
	ActiveTab string           `json:"activeTab"`
	Progress  float64          `json:"progress"`
	IsFirst   bool             `json:"isFirst"`
	IsLast    bool             `json:"isLast"`
}

func wizardState(session *services.RatePlanWizardSession) RatePlanWizardState {
	nav := session.Navigator()
	return RatePlanWizardState{
		SessionID: session.SessionID,
		Draft:     session.Draft,
		ActiveTab: session.ActiveTab,
		Progress:  nav.Progress(),
		IsFirst:   nav.IsFirstTab(),
		IsLast:    nav.IsLastTab(),
	}
}

func loadWizardSession(c *gin.Context) (*services.RatePlanWizardSession, bool) {
	session, err := services.GetRatePlanWizard(config.Ctx, config.RedisClient, c.Param("id"))
	if err != nil {
		if err == apperrors.ErrSessionNotFound {
			response.NotFound(c)
		} else {
			response.ServerError(c)
		}
		return nil, false
	}
	return session, true
}

// StartRatePlanWizard mở phiên wizard mới với bản nháp mặc định
func StartRatePlanWizard(c *gin.Context) {
	session, err := services.StartRatePlanWizard(config.Ctx, config.RedisClient)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, "Tạo phiên wizard thành công", wizardState(session))
}

// GetRatePlanWizard trả về trạng thái hiện tại của phiên wizard
func GetRatePlanWizard(c *gin.Context) {
	session, ok := loadWizardSession(c)
	if !ok {
		return
	}
	response.Success(c, "Lấy phiên wizard thành công", wizardState(session))
}

// UpdateRatePlanWizard merge các field trong body vào bản nháp của phiên.
// Merge là trọn vẹn hoặc từ chối: body sai cấu trúc thì bản nháp giữ nguyên
func UpdateRatePlanWizard(c *gin.Context) {
	session, ok := loadWizardSession(c)
	if !ok {
		return
	}

	var partial map[string]any
	if err := c.ShouldBindJSON(&partial); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	store := wizard.NewStore(session.Draft)
	draft, err := store.Update(partial)
	if err != nil {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}
	session.Draft = draft

	if err := services.SaveRatePlanWizard(config.Ctx, config.RedisClient, session); err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, "Cập nhật bản nháp thành công", wizardState(session))
}

// NextRatePlanWizardTab tiến sang tab kế tiếp nếu tab hiện tại hợp lệ
func NextRatePlanWizardTab(c *gin.Context) {
	session, ok := loadWizardSession(c)
	if !ok {
		return
	}

	var warning string
	nav := wizard.NewNavigator(wizard.RatePlanTabs, func(tab string) bool {
		return wizard.CanProceedRatePlan(tab, session.Draft)
	}, func(message string) {
		warning = message
	})
	nav.SetActiveTab(session.ActiveTab)

	moved := nav.Next()
	session.ActiveTab = nav.ActiveTab()

	if err := services.SaveRatePlanWizard(config.Ctx, config.RedisClient, session); err != nil {
		response.ServerError(c)
		return
	}

	if !moved && warning != "" {
		response.BadRequest(c, warning)
		return
	}
	response.Success(c, "Chuyển tab thành công", wizardState(session))
}

// PrevRatePlanWizardTab lùi về tab trước, không điều kiện
func PrevRatePlanWizardTab(c *gin.Context) {
	session, ok := loadWizardSession(c)
	if !ok {
		return
	}

	nav := session.Navigator()
	nav.Prev()
	session.ActiveTab = nav.ActiveTab()

	if err := services.SaveRatePlanWizard(config.Ctx, config.RedisClient, session); err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, "Chuyển tab thành công", wizardState(session))
}

// SubmitRatePlanWizard chạy gate validate cuối trên bản nháp rồi tạo gói
// giá. Phiên wizard bị hủy sau khi tạo thành công
func (ctl *RatePlanController) SubmitRatePlanWizard(c *gin.Context) {
	session, ok := loadWizardSession(c)
	if !ok {
		return
	}

	report := wizard.ValidateRatePlanDraft(session.Draft)
	if !report.IsValid {
		response.ValidationError(c, "Dữ liệu gói giá chưa hợp lệ",
			report.Flatten("general", "duration", "meals", "policies"))
		return
	}

	plan, err := ctl.service.Create(session.Draft)
	if err != nil {
		handleRatePlanError(c, err)
		return
	}

	services.DeleteRatePlanWizard(config.Ctx, config.RedisClient, session.SessionID)
	services.NotifyChange(ctl.ws, services.ChangeEvent{Entity: "rate-plan", Action: "create", ID: plan.RatePlanID})
	response.Success(c, "Tạo gói giá thành công", dto.RatePlanFromModel(*plan))
}

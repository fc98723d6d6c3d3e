package dto

import (
	"strconv"
	"time"

	"villa/errors"
	"villa/models"

	"github.com/lib/pq"
)

// RatePlanForm là DTO dạng form của gói giá: các trường số nhập qua
// text input được giữ dưới dạng chuỗi, đúng với payload client gửi lên
type RatePlanForm struct {
	// General Details
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	ApplicableRooms    []uint  `json:"applicableRooms"`
	IsActive           bool    `json:"isActive"`
	MinimumStay        int     `json:"minimumStay"`
	MaximumStay        *int    `json:"maximumStay,omitempty"`
	BasePrice          string  `json:"basePrice"`
	DiscountPercentage string  `json:"discountPercentage"`
	RatePlanStatus     string  `json:"ratePlanStatus" binding:"omitempty,rateplanstatus"`

	// Duration & Date Rules
	RatePlanType     string             `json:"ratePlanType" binding:"omitempty,rateplantype"`
	IsDateSpecific   bool               `json:"isDateSpecific"`
	DateRanges       []models.DateRange `json:"dateRanges"`
	HasBlackoutDates bool               `json:"hasBlackoutDates"`
	BlackoutDates    []models.DateRange `json:"blackoutDates"`
	DurationType     string             `json:"durationType" binding:"omitempty,stayduration"`
	CustomStayLength int                `json:"customStayLength"`

	// Meals & Amenities
	MealPlan          string   `json:"mealPlan" binding:"omitempty,mealplan"`
	AmenitiesIncluded []string `json:"amenitiesIncluded"`
	CustomInclusions  []string `json:"customInclusions"`

	// Policies & Cancellation
	IsRefundable       bool   `json:"isRefundable"`
	RefundWindow       int    `json:"refundWindow"`
	CancellationPolicy string `json:"cancellationPolicy"`
	PaymentTerms       string `json:"paymentTerms" binding:"omitempty,paymentterms"`
}

// RoomRef là thông tin rút gọn của phòng gắn với gói giá
type RoomRef struct {
	RoomID uint   `json:"roomId"`
	Name   string `json:"name"`
}

// RatePlanResponse là DTO dạng wire của gói giá: các trường số là số,
// applicableRooms là danh sách phòng kèm tên
type RatePlanResponse struct {
	RatePlanID         uint               `json:"ratePlanId"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	IsActive           bool               `json:"isActive"`
	MinimumStay        int                `json:"minimumStay"`
	MaximumStay        *int               `json:"maximumStay,omitempty"`
	BasePrice          float64            `json:"basePrice"`
	DiscountPercentage float64            `json:"discountPercentage"`
	RatePlanType       string             `json:"ratePlanType"`
	IsDateSpecific     bool               `json:"isDateSpecific"`
	DateRanges         []models.DateRange `json:"dateRanges"`
	HasBlackoutDates   bool               `json:"hasBlackoutDates"`
	BlackoutDates      []models.DateRange `json:"blackoutDates"`
	DurationType       string             `json:"durationType"`
	CustomStayLength   int                `json:"customStayLength"`
	MealPlan           string             `json:"mealPlan"`
	AmenitiesIncluded  []string           `json:"amenitiesIncluded"`
	CustomInclusions   []string           `json:"customInclusions"`
	RatePlanStatus     string             `json:"ratePlanStatus"`
	IsRefundable       bool               `json:"isRefundable"`
	RefundWindow       int                `json:"refundWindow"`
	CancellationPolicy string             `json:"cancellationPolicy"`
	PaymentTerms       string             `json:"paymentTerms"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
	ApplicableRooms    []RoomRef          `json:"applicableRooms"`
}

// ListRatePlansRequest là query descriptor cho danh sách gói giá có phân trang.
// RoomIDs để nil khi không lọc theo phòng: key bị bỏ hẳn khỏi payload
// thay vì gửi mảng rỗng
type ListRatePlansRequest struct {
	Page           int    `json:"page"`
	Limit          int    `json:"limit"`
	RatePlanType   string `json:"ratePlanType,omitempty"`
	RatePlanStatus string `json:"ratePlanStatus,omitempty"`
	RoomIDs        []uint `json:"roomIds,omitempty"`
	Search         string `json:"search,omitempty"`
}

// ChangeRatePlanStatusRequest là DTO cho request đổi trạng thái gói giá
type ChangeRatePlanStatusRequest struct {
	RatePlanID uint   `json:"ratePlanId" binding:"required"`
	NewStatus  string `json:"newStatus" binding:"required,rateplanstatus"`
}

// RatePlanToForm chuyển entity sang dạng form: số thành chuỗi cho text input,
// danh sách khoảng ngày giữ nguyên, applicableRooms rút về danh sách id
func RatePlanToForm(plan models.RatePlan) RatePlanForm {
	roomIDs := make([]uint, 0, len(plan.ApplicableRooms))
	for _, room := range plan.ApplicableRooms {
		roomIDs = append(roomIDs, room.RoomID)
	}

	return RatePlanForm{
		Name:               plan.Name,
		Description:        plan.Description,
		ApplicableRooms:    roomIDs,
		IsActive:           plan.IsActive,
		MinimumStay:        plan.MinimumStay,
		MaximumStay:        plan.MaximumStay,
		BasePrice:          strconv.FormatFloat(plan.BasePrice, 'f', -1, 64),
		DiscountPercentage: strconv.FormatFloat(plan.DiscountPercentage, 'f', -1, 64),
		RatePlanStatus:     plan.RatePlanStatus,
		RatePlanType:       plan.RatePlanType,
		IsDateSpecific:     plan.IsDateSpecific,
		DateRanges:         []models.DateRange(plan.DateRanges),
		HasBlackoutDates:   plan.HasBlackoutDates,
		BlackoutDates:      []models.DateRange(plan.BlackoutDates),
		DurationType:       plan.DurationType,
		CustomStayLength:   plan.CustomStayLength,
		MealPlan:           plan.MealPlan,
		AmenitiesIncluded:  []string(plan.AmenitiesIncluded),
		CustomInclusions:   []string(plan.CustomInclusions),
		IsRefundable:       plan.IsRefundable,
		RefundWindow:       plan.RefundWindow,
		CancellationPolicy: plan.CancellationPolicy,
		PaymentTerms:       plan.PaymentTerms,
	}
}

// ToModel chuyển form sang entity: chuỗi số được parse lại thành số.
// Danh sách id phòng được giữ nguyên, server tự resolve sang entity phòng.
// Chuỗi số sai định dạng trả về lỗi tại đây chứ không bị chặn ở validator
func (f RatePlanForm) ToModel() (models.RatePlan, error) {
	basePrice, err := strconv.ParseFloat(f.BasePrice, 64)
	if err != nil {
		return models.RatePlan{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Giá cơ bản không hợp lệ", err)
	}

	discount := 0.0
	if f.DiscountPercentage != "" {
		discount, err = strconv.ParseFloat(f.DiscountPercentage, 64)
		if err != nil {
			return models.RatePlan{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Phần trăm giảm giá không hợp lệ", err)
		}
	}

	return models.RatePlan{
		Name:               f.Name,
		Description:        f.Description,
		IsActive:           f.IsActive,
		MinimumStay:        f.MinimumStay,
		MaximumStay:        f.MaximumStay,
		BasePrice:          basePrice,
		DiscountPercentage: discount,
		RatePlanType:       f.RatePlanType,
		IsDateSpecific:     f.IsDateSpecific,
		DateRanges:         models.DateRangeList(f.DateRanges),
		HasBlackoutDates:   f.HasBlackoutDates,
		BlackoutDates:      models.DateRangeList(f.BlackoutDates),
		DurationType:       f.DurationType,
		CustomStayLength:   f.CustomStayLength,
		MealPlan:           f.MealPlan,
		AmenitiesIncluded:  pq.StringArray(f.AmenitiesIncluded),
		CustomInclusions:   pq.StringArray(dedupeStrings(f.CustomInclusions)),
		RatePlanStatus:     f.RatePlanStatus,
		IsRefundable:       f.IsRefundable,
		RefundWindow:       f.RefundWindow,
		CancellationPolicy: f.CancellationPolicy,
		PaymentTerms:       f.PaymentTerms,
	}, nil
}

// RatePlanFromModel chuyển entity sang DTO response
func RatePlanFromModel(plan models.RatePlan) RatePlanResponse {
	rooms := make([]RoomRef, 0, len(plan.ApplicableRooms))
	for _, room := range plan.ApplicableRooms {
		rooms = append(rooms, RoomRef{RoomID: room.RoomID, Name: room.Name})
	}

	return RatePlanResponse{
		RatePlanID:         plan.RatePlanID,
		Name:               plan.Name,
		Description:        plan.Description,
		IsActive:           plan.IsActive,
		MinimumStay:        plan.MinimumStay,
		MaximumStay:        plan.MaximumStay,
		BasePrice:          plan.BasePrice,
		DiscountPercentage: plan.DiscountPercentage,
		RatePlanType:       plan.RatePlanType,
		IsDateSpecific:     plan.IsDateSpecific,
		DateRanges:         []models.DateRange(plan.DateRanges),
		HasBlackoutDates:   plan.HasBlackoutDates,
		BlackoutDates:      []models.DateRange(plan.BlackoutDates),
		DurationType:       plan.DurationType,
		CustomStayLength:   plan.CustomStayLength,
		MealPlan:           plan.MealPlan,
		AmenitiesIncluded:  []string(plan.AmenitiesIncluded),
		CustomInclusions:   []string(plan.CustomInclusions),
		RatePlanStatus:     plan.RatePlanStatus,
		IsRefundable:       plan.IsRefundable,
		RefundWindow:       plan.RefundWindow,
		CancellationPolicy: plan.CancellationPolicy,
		PaymentTerms:       plan.PaymentTerms,
		CreatedAt:          plan.CreatedAt,
		UpdatedAt:          plan.UpdatedAt,
		ApplicableRooms:    rooms,
	}
}

// dedupeStrings loại bỏ giá trị trùng, giữ nguyên thứ tự xuất hiện đầu tiên
func dedupeStrings(values []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}

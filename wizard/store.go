package wizard

import (
	"encoding/json"

	"villa/constants"
	"villa/dto"
	"villa/errors"
	"villa/models"
)

// Store giữ bản nháp đang chỉnh sửa của một wizard. Bản nháp chỉ sống
// trong phiên làm việc, không có persistence ở tầng này
type Store[T any] struct {
	draft T
}

// NewStore tạo store với bản nháp ban đầu
func NewStore[T any](draft T) *Store[T] {
	return &Store[T]{draft: draft}
}

// Draft trả về bản nháp hiện tại
func (s *Store[T]) Draft() T {
	return s.draft
}

// Update merge nông các key trong partial vào bản nháp. Một lần merge
// hoặc thay thế trọn vẹn các key được liệt kê hoặc bị từ chối khi dữ
// liệu sai cấu trúc, không bao giờ áp dụng dở dang. Không validate gì
// ở tầng này
func (s *Store[T]) Update(partial map[string]any) (T, error) {
	// Decode vào một bản clone sâu: bản nháp đang lưu có các field con
	// trỏ và slice, copy nông sẽ để merge lỗi ghi xuyên qua chúng
	current, err := json.Marshal(s.draft)
	if err != nil {
		return s.draft, errors.NewAppError(errors.ErrCodeInvalidFormat, "Dữ liệu cập nhật không hợp lệ", err)
	}
	var draft T
	if err := json.Unmarshal(current, &draft); err != nil {
		return s.draft, errors.NewAppError(errors.ErrCodeInvalidFormat, "Dữ liệu cập nhật không hợp lệ", err)
	}

	b, err := json.Marshal(partial)
	if err != nil {
		return s.draft, errors.NewAppError(errors.ErrCodeInvalidFormat, "Dữ liệu cập nhật không hợp lệ", err)
	}
	if err := json.Unmarshal(b, &draft); err != nil {
		return s.draft, errors.NewAppError(errors.ErrCodeInvalidFormat, "Dữ liệu cập nhật sai cấu trúc", err)
	}

	s.draft = draft
	return s.draft, nil
}

// Replace thay toàn bộ bản nháp, dùng khi hydrate từ dữ liệu server
func (s *Store[T]) Replace(draft T) {
	s.draft = draft
}

// NewRatePlanDraft tạo bản nháp gói giá với giá trị mặc định
func NewRatePlanDraft() dto.RatePlanForm {
	return dto.RatePlanForm{
		Name:               "",
		Description:        "",
		ApplicableRooms:    []uint{},
		IsActive:           true,
		MinimumStay:        1,
		MaximumStay:        nil,
		BasePrice:          "",
		DiscountPercentage: "0",
		RatePlanStatus:     constants.RatePlanStatusActive,
		RatePlanType:       constants.RatePlanTypeStandard,
		IsDateSpecific:     false,
		DateRanges:         []models.DateRange{},
		HasBlackoutDates:   false,
		BlackoutDates:      []models.DateRange{},
		DurationType:       constants.StayDurationCustom,
		CustomStayLength:   1,
		MealPlan:           constants.MealPlanNone,
		AmenitiesIncluded:  []string{},
		CustomInclusions:   []string{},
		IsRefundable:       false,
		RefundWindow:       7,
		CancellationPolicy: "",
		PaymentTerms:       constants.PaymentPrepaid,
	}
}

// NewRoomDraft tạo bản nháp phòng với giá trị mặc định
func NewRoomDraft() dto.RoomForm {
	return dto.RoomForm{
		Name:              "",
		Type:              "",
		BedType:           "",
		NumBeds:           "1",
		Size:              "",
		MaxGuests:         "2",
		Available:         "1",
		BasePrice:         "",
		Description:       "",
		Refundable:        true,
		Prepayment:        false,
		Breakfast:         false,
		SelectedAmenities: []string{},
		Images:            []string{},
		TotalOccupancy:    "2",
		LimitAdults:       false,
		MaxAdults:         "2",
		LimitChildren:     false,
		MaxChildren:       "0",
		NumBathrooms:      "1",
		Bathrooms:         []models.Bathroom{{IsPrivate: true, IsInRoom: true}},
		RoomStatus:        constants.RoomStatusActive,
	}
}

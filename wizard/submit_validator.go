package wizard

import (
	"strings"

	"villa/dto"
)

// Report là kết quả validate toàn bộ bản nháp trước khi lưu, gom đủ mọi
// vi phạm theo từng section thay vì dừng ở lỗi đầu tiên
type Report struct {
	IsValid bool                `json:"isValid"`
	Errors  map[string][]string `json:"errors"`
}

// Flatten gom toàn bộ message lỗi thành một danh sách phẳng theo thứ tự section
func (r Report) Flatten(sections ...string) []string {
	var all []string
	for _, section := range sections {
		all = append(all, r.Errors[section]...)
	}
	return all
}

// ValidateRatePlanDraft là gate cuối trước khi lưu gói giá. Chặt hơn gate
// điều hướng tab: kiểm tra đủ mọi rule của mọi section bất kể người dùng
// đã đi qua tab đó hay chưa
func ValidateRatePlanDraft(draft dto.RatePlanForm) Report {
	errors := make(map[string][]string)

	var general []string
	if strings.TrimSpace(draft.Name) == "" {
		general = append(general, "Tên gói giá không được để trống")
	}
	if draft.MinimumStay <= 0 {
		general = append(general, "Số đêm tối thiểu phải lớn hơn 0")
	}
	if strings.TrimSpace(draft.BasePrice) == "" {
		general = append(general, "Giá cơ bản không được để trống")
	}
	if len(draft.ApplicableRooms) == 0 {
		general = append(general, "Phải chọn ít nhất một phòng áp dụng")
	}
	if len(general) > 0 {
		errors["general"] = general
	}

	var duration []string
	if draft.IsDateSpecific && len(draft.DateRanges) == 0 {
		duration = append(duration, "Phải có ít nhất một khoảng ngày áp dụng")
	}
	if len(duration) > 0 {
		errors["duration"] = duration
	}

	var policies []string
	if draft.IsRefundable && draft.RefundWindow <= 0 {
		policies = append(policies, "Phải nhập thời hạn hoàn tiền cho gói giá được hoàn tiền")
	}
	if len(policies) > 0 {
		errors["policies"] = policies
	}

	return Report{
		IsValid: len(errors) == 0,
		Errors:  errors,
	}
}

// ValidateRoomDraft là gate cuối trước khi lưu phòng
func ValidateRoomDraft(draft dto.RoomForm) Report {
	errors := make(map[string][]string)

	var basic []string
	if strings.TrimSpace(draft.Name) == "" {
		basic = append(basic, "Tên phòng không được để trống")
	}
	if draft.Type == "" {
		basic = append(basic, "Phải chọn loại phòng")
	}
	if draft.BedType == "" {
		basic = append(basic, "Phải chọn loại giường")
	}
	if draft.NumBeds == "" {
		basic = append(basic, "Số giường không được để trống")
	}
	if draft.MaxGuests == "" {
		basic = append(basic, "Số khách tối đa không được để trống")
	}
	if len(basic) > 0 {
		errors["basic"] = basic
	}

	var details []string
	if draft.Size == "" {
		details = append(details, "Diện tích phòng không được để trống")
	}
	if draft.Available == "" {
		details = append(details, "Số phòng trống không được để trống")
	}
	if strings.TrimSpace(draft.Description) == "" {
		details = append(details, "Mô tả phòng không được để trống")
	}
	if draft.NumBathrooms == "" {
		details = append(details, "Số phòng tắm không được để trống")
	}
	if len(details) > 0 {
		errors["details"] = details
	}

	var occupancy []string
	if draft.TotalOccupancy == "" {
		occupancy = append(occupancy, "Tổng số người ở không được để trống")
	}
	if len(occupancy) > 0 {
		errors["occupancy"] = occupancy
	}

	var pricing []string
	if draft.BasePrice == "" {
		pricing = append(pricing, "Giá cơ bản không được để trống")
	}
	if len(pricing) > 0 {
		errors["pricing"] = pricing
	}

	return Report{
		IsValid: len(errors) == 0,
		Errors:  errors,
	}
}

package validator

import (
	"strings"

	"villa/constants"
	"villa/errors"
	"villa/models"
)

// ValidateRatePlan validate gói giá trước khi ghi vào cơ sở dữ liệu
func ValidateRatePlan(plan *models.RatePlan) error {
	if strings.TrimSpace(plan.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên gói giá không được để trống", nil)
	}

	if plan.MinimumStay <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số đêm tối thiểu phải lớn hơn 0", nil)
	}

	if plan.MaximumStay != nil && *plan.MaximumStay < plan.MinimumStay {
		return errors.NewAppError(errors.ErrCodeValidation, "Số đêm tối đa không được nhỏ hơn số đêm tối thiểu", nil)
	}

	if plan.BasePrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá cơ bản không được âm", nil)
	}

	if plan.DiscountPercentage < 0 || plan.DiscountPercentage > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Phần trăm giảm giá phải nằm trong khoảng từ 0 đến 100", nil)
	}

	if !constants.IsValidRatePlanType(plan.RatePlanType) {
		return errors.NewAppError(errors.ErrCodeInvalidEnum, "Loại gói giá không hợp lệ", nil)
	}

	if !constants.IsValidRatePlanStatus(plan.RatePlanStatus) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái gói giá không hợp lệ", nil)
	}

	if plan.MealPlan != "" && !constants.IsValidMealPlan(plan.MealPlan) {
		return errors.NewAppError(errors.ErrCodeInvalidEnum, "Gói ăn uống không hợp lệ", nil)
	}

	if plan.PaymentTerms != "" && !constants.IsValidPaymentTerms(plan.PaymentTerms) {
		return errors.NewAppError(errors.ErrCodeInvalidEnum, "Hình thức thanh toán không hợp lệ", nil)
	}

	if plan.RatePlanType == constants.RatePlanTypeDateSpecific {
		if len(plan.DateRanges) == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Gói giá theo ngày phải có ít nhất một khoảng ngày áp dụng", nil)
		}
		if err := validateDateRanges(plan.DateRanges); err != nil {
			return err
		}
		if plan.HasBlackoutDates {
			if err := validateDateRanges(plan.BlackoutDates); err != nil {
				return err
			}
		}
	}

	if plan.RatePlanType == constants.RatePlanTypeDurationBased {
		if !constants.IsValidStayDuration(plan.DurationType) {
			return errors.NewAppError(errors.ErrCodeInvalidEnum, "Loại thời gian lưu trú không hợp lệ", nil)
		}
		if plan.DurationType == constants.StayDurationCustom && plan.CustomStayLength <= 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Độ dài lưu trú tùy chỉnh phải lớn hơn 0", nil)
		}
	}

	if plan.IsRefundable && plan.RefundWindow < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Thời hạn hoàn tiền không được âm", nil)
	}

	return nil
}

// ValidateRoom validate phòng trước khi ghi vào cơ sở dữ liệu
func ValidateRoom(room *models.Room) error {
	if strings.TrimSpace(room.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}

	if room.Type == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}

	if room.BedType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại giường không được để trống", nil)
	}

	if room.NumBeds <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số giường phải lớn hơn 0", nil)
	}

	if room.MaxGuests <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số khách tối đa phải lớn hơn 0", nil)
	}

	if room.BasePrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá cơ bản không được âm", nil)
	}

	if !constants.IsValidRoomStatus(room.RoomStatus) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái phòng không hợp lệ", nil)
	}

	if room.NumBathrooms != len(room.Bathrooms) {
		return errors.NewAppError(errors.ErrCodeValidation, "Số phòng tắm không khớp với danh sách phòng tắm", nil)
	}

	return nil
}

// validateDateRanges kiểm tra từng khoảng ngày có from trước to
func validateDateRanges(ranges []models.DateRange) error {
	for _, r := range ranges {
		if r.To.Before(r.From) {
			return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày kết thúc phải sau ngày bắt đầu", nil)
		}
	}
	return nil
}

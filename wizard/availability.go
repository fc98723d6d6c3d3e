package wizard

import (
	"villa/constants"
	"villa/dto"
	"villa/models"
)

// Availability là biến thể có gắn nhãn của chế độ áp dụng gói giá. Ba
// chế độ loại trừ lẫn nhau: bản nháp vẫn giữ nguyên các trường của chế
// độ không hoạt động, nhưng chỉ biến thể đang hoạt động được validate
// và hiển thị
type Availability interface {
	isAvailability()
}

// StandardAvailability là gói giá áp dụng mọi thời điểm
type StandardAvailability struct{}

// DateSpecificAvailability là gói giá chỉ áp dụng trong các khoảng ngày
// chỉ định, có thể kèm các khoảng ngày chặn
type DateSpecificAvailability struct {
	DateRanges    []models.DateRange
	BlackoutDates []models.DateRange
}

// DurationAvailability là gói giá theo độ dài lưu trú
type DurationAvailability struct {
	DurationType string
	StayLength   int
}

func (StandardAvailability) isAvailability()     {}
func (DateSpecificAvailability) isAvailability() {}
func (DurationAvailability) isAvailability()     {}

// AvailabilityOf trích biến thể đang hoạt động từ bản nháp phẳng
func AvailabilityOf(draft dto.RatePlanForm) Availability {
	switch draft.RatePlanType {
	case constants.RatePlanTypeDateSpecific:
		availability := DateSpecificAvailability{DateRanges: draft.DateRanges}
		if draft.HasBlackoutDates {
			availability.BlackoutDates = draft.BlackoutDates
		}
		return availability
	case constants.RatePlanTypeDurationBased:
		availability := DurationAvailability{DurationType: draft.DurationType}
		if draft.DurationType == constants.StayDurationCustom {
			availability.StayLength = draft.CustomStayLength
		}
		return availability
	default:
		return StandardAvailability{}
	}
}

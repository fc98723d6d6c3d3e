package wizard

import (
	"strings"

	"villa/dto"
)

// CanProceedRatePlan kiểm tra tab hiện tại của wizard gói giá đã đủ điều
// kiện đi tiếp chưa. Đây là gate mềm cho điều hướng, lỏng hơn validator
// lúc submit. Tab không nhận diện được mặc định cho qua
func CanProceedRatePlan(tab string, draft dto.RatePlanForm) bool {
	switch tab {
	case "general":
		return strings.TrimSpace(draft.Name) != "" &&
			draft.MinimumStay > 0 &&
			strings.TrimSpace(draft.BasePrice) != ""
	case "duration":
		if draft.IsDateSpecific {
			return len(draft.DateRanges) > 0
		}
		return true
	case "meals", "policies":
		return true
	default:
		return true
	}
}

// CanProceedRoom kiểm tra tab hiện tại của wizard phòng đã đủ điều kiện
// đi tiếp chưa
func CanProceedRoom(tab string, draft dto.RoomForm) bool {
	switch tab {
	case "basic":
		return strings.TrimSpace(draft.Name) != "" &&
			draft.Type != "" &&
			draft.BedType != "" &&
			draft.NumBeds != "" &&
			draft.MaxGuests != ""
	case "details":
		return draft.Size != "" &&
			draft.Available != "" &&
			strings.TrimSpace(draft.Description) != "" &&
			draft.NumBathrooms != ""
	case "occupancy":
		return draft.TotalOccupancy != ""
	case "amenities", "images":
		return true
	case "pricing":
		return draft.BasePrice != ""
	default:
		return true
	}
}

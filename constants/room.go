package constants

// Trạng thái phòng
const (
	RoomStatusActive      = "Active"
	RoomStatusInactive    = "Inactive"
	RoomStatusMaintenance = "Maintenance"
)

// IsValidRoomStatus kiểm tra trạng thái phòng hợp lệ
func IsValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusActive, RoomStatusInactive, RoomStatusMaintenance:
		return true
	}
	return false
}

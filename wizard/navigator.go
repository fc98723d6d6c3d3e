package wizard

import (
	"villa/errors"
)

// Thứ tự tab cố định của từng wizard
var (
	RatePlanTabs = []string{"general", "duration", "meals", "policies", "review"}
	RoomTabs     = []string{"basic", "details", "occupancy", "amenities", "images", "pricing"}
)

// Navigator điều khiển chuyển tab của wizard. Đi tới bị chặn bởi tab
// validator, đi lùi luôn được phép. Chuyển tab không động vào bản nháp
type Navigator struct {
	tabs       []string
	active     int
	canProceed func(tab string) bool
	warn       func(message string)
}

// NewNavigator tạo navigator bắt đầu ở tab đầu tiên. canProceed bắt
// buộc, warn có thể nil
func NewNavigator(tabs []string, canProceed func(tab string) bool, warn func(message string)) *Navigator {
	return &Navigator{
		tabs:       tabs,
		canProceed: canProceed,
		warn:       warn,
	}
}

// ActiveTab trả về tên tab hiện tại
func (n *Navigator) ActiveTab() string {
	return n.tabs[n.active]
}

// IsFirstTab kiểm tra đang ở tab đầu
func (n *Navigator) IsFirstTab() bool {
	return n.active == 0
}

// IsLastTab kiểm tra đang ở tab cuối
func (n *Navigator) IsLastTab() bool {
	return n.active == len(n.tabs)-1
}

// Next tiến sang tab kế tiếp. Khi tab hiện tại chưa hợp lệ thì cảnh báo
// và đứng yên. Tab cuối không có chuyển tiếp
func (n *Navigator) Next() bool {
	if !n.canProceed(n.ActiveTab()) {
		if n.warn != nil {
			n.warn("Vui lòng điền đầy đủ các trường bắt buộc trước khi tiếp tục")
		}
		return false
	}
	if n.IsLastTab() {
		return false
	}
	n.active++
	return true
}

// Prev lùi về tab trước, không điều kiện. Đứng yên ở tab đầu
func (n *Navigator) Prev() bool {
	if n.IsFirstTab() {
		return false
	}
	n.active--
	return true
}

// Progress trả về phần trăm tiến độ theo vị trí tab hiện tại
func (n *Navigator) Progress() float64 {
	return float64(n.active+1) / float64(len(n.tabs)) * 100
}

// SetActiveTab nhảy thẳng tới một tab theo tên
func (n *Navigator) SetActiveTab(name string) error {
	for i, tab := range n.tabs {
		if tab == name {
			n.active = i
			return nil
		}
	}
	return errors.ErrUnknownTab
}

package services

import (
	"sync"
	"time"
)

// Debouncer hoãn thực thi cho tới khi input lặng được một khoảng cố định.
// Mỗi lần Trigger hủy lần chờ trước đó: chỉ lần gọi cuối cùng trong cửa
// sổ chờ được chạy
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer tạo Debouncer với khoảng chờ cho trước
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger lên lịch chạy fn sau khoảng chờ, hủy lần chờ đang treo nếu có
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop hủy lần chờ đang treo nếu có
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

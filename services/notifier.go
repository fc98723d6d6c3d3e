package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/olahol/melody"
)

// ChangeEvent là sự kiện thay đổi dữ liệu phát qua websocket cho admin
type ChangeEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     uint   `json:"id"`
}

// Cửa sổ gộp sự kiện websocket, tách khỏi debounce của ô search
const NotifyDebounce = 500 * time.Millisecond

var (
	notifyMu       sync.Mutex
	notifyDebounce = NewDebouncer(NotifyDebounce)
	pendingEvent   ChangeEvent
)

// NotifyChange phát sự kiện thay đổi cho các admin đang mở dashboard.
// Các thay đổi dồn dập được gộp qua debounce: client chỉ cần một tín
// hiệu reload, không cần từng sự kiện trung gian
func NotifyChange(m *melody.Melody, event ChangeEvent) {
	if m == nil {
		return
	}

	notifyMu.Lock()
	pendingEvent = event
	notifyMu.Unlock()

	notifyDebounce.Trigger(func() {
		notifyMu.Lock()
		payload, err := json.Marshal(pendingEvent)
		notifyMu.Unlock()
		if err != nil {
			log.Printf("Lỗi khi serialize sự kiện websocket: %v", err)
			return
		}
		if err := m.Broadcast(payload); err != nil {
			log.Printf("Lỗi khi broadcast sự kiện websocket: %v", err)
		}
	})
}

package services

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"villa/constants"
	"villa/dto"
)

// DefaultSearchDebounce là khoảng lặng mặc định của ô search trước khi phát query
const DefaultSearchDebounce = 500 * time.Millisecond

// FetchFunc nhận query descriptor đã chốt và thực hiện lần fetch tương ứng
type FetchFunc func(req dto.ListRatePlansRequest)

// RatePlanQuery giữ trạng thái lọc của trang danh sách gói giá và phát
// query descriptor cho backend. Đổi search được debounce; đổi filter
// dropdown hoặc trang phát fetch ngay. Mọi thay đổi filter đưa về trang 1
type RatePlanQuery struct {
	mu           sync.Mutex
	search       string
	typeFilter   string
	statusFilter string
	roomFilter   string
	page         int
	limit        int
	debouncer    *Debouncer
	fetch        FetchFunc
}

// RatePlanQueryOptions là tham số khởi tạo RatePlanQuery. SearchDebounce
// bằng 0 dùng giá trị mặc định 500ms
type RatePlanQueryOptions struct {
	Fetch          FetchFunc
	SearchDebounce time.Duration
}

// NewRatePlanQuery tạo query façade với filter mặc định "all", trang 1
func NewRatePlanQuery(opts RatePlanQueryOptions) *RatePlanQuery {
	delay := opts.SearchDebounce
	if delay == 0 {
		delay = DefaultSearchDebounce
	}
	return &RatePlanQuery{
		typeFilter:   "all",
		statusFilter: "all",
		roomFilter:   "all",
		page:         1,
		limit:        10,
		debouncer:    NewDebouncer(delay),
		fetch:        opts.Fetch,
	}
}

// SetSearch cập nhật search text. Query chỉ phát sau khi người dùng ngừng
// gõ hết cửa sổ debounce: các giá trị trung gian trong cửa sổ không bao
// giờ tạo fetch
func (q *RatePlanQuery) SetSearch(search string) {
	q.mu.Lock()
	q.search = search
	q.mu.Unlock()

	q.debouncer.Trigger(func() {
		q.mu.Lock()
		q.page = 1
		req := q.descriptorLocked()
		q.mu.Unlock()
		q.fetch(req)
	})
}

// SetTypeFilter đổi filter loại gói giá, fetch ngay
func (q *RatePlanQuery) SetTypeFilter(typeFilter string) {
	q.applyFilter(func() { q.typeFilter = typeFilter })
}

// SetStatusFilter đổi filter trạng thái, fetch ngay
func (q *RatePlanQuery) SetStatusFilter(statusFilter string) {
	q.applyFilter(func() { q.statusFilter = statusFilter })
}

// SetRoomFilter đổi filter phòng áp dụng, fetch ngay
func (q *RatePlanQuery) SetRoomFilter(roomFilter string) {
	q.applyFilter(func() { q.roomFilter = roomFilter })
}

// SetPage chuyển trang, fetch ngay
func (q *RatePlanQuery) SetPage(page int) {
	q.mu.Lock()
	if page < 1 {
		page = 1
	}
	q.page = page
	req := q.descriptorLocked()
	q.mu.Unlock()
	q.fetch(req)
}

// SetLimit đổi số bản ghi mỗi trang, quay về trang 1 và fetch ngay
func (q *RatePlanQuery) SetLimit(limit int) {
	q.mu.Lock()
	if limit < 1 {
		limit = 10
	}
	q.limit = limit
	q.page = 1
	req := q.descriptorLocked()
	q.mu.Unlock()
	q.fetch(req)
}

// Descriptor trả về query descriptor theo trạng thái filter hiện tại
func (q *RatePlanQuery) Descriptor() dto.ListRatePlansRequest {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.descriptorLocked()
}

func (q *RatePlanQuery) applyFilter(apply func()) {
	q.mu.Lock()
	apply()
	q.page = 1
	req := q.descriptorLocked()
	q.mu.Unlock()
	q.fetch(req)
}

// descriptorLocked dựng descriptor từ trạng thái filter. Filter "all" bị
// bỏ hẳn khỏi descriptor; riêng room filter để nil thay vì mảng rỗng
func (q *RatePlanQuery) descriptorLocked() dto.ListRatePlansRequest {
	req := dto.ListRatePlansRequest{
		Page:   q.page,
		Limit:  q.limit,
		Search: strings.TrimSpace(q.search),
	}

	if q.typeFilter != "all" && q.typeFilter != constants.RatePlanTypeAll && q.typeFilter != "" {
		req.RatePlanType = q.typeFilter
	}

	if q.statusFilter != "all" && q.statusFilter != "" {
		if status, ok := constants.CanonicalRatePlanStatus(q.statusFilter); ok {
			req.RatePlanStatus = status
		}
	}

	if q.roomFilter != "all" && q.roomFilter != "" {
		if roomID, err := strconv.ParseUint(q.roomFilter, 10, 64); err == nil {
			req.RoomIDs = []uint{uint(roomID)}
		}
	}

	return req
}

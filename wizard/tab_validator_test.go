package wizard

import (
	"testing"

	"villa/dto"
	"villa/models"

	"github.com/stretchr/testify/assert"
)

func TestCanProceedRatePlanGeneral(t *testing.T) {
	tests := []struct {
		name     string
		draft    func() dto.RatePlanForm
		expected bool
	}{
		{
			name: "đủ tên, số đêm và giá",
			draft: func() dto.RatePlanForm {
				d := NewRatePlanDraft()
				d.Name = "Gói cuối tuần"
				d.BasePrice = "1500000"
				return d
			},
			expected: true,
		},
		{
			name: "thiếu tên",
			draft: func() dto.RatePlanForm {
				d := NewRatePlanDraft()
				d.BasePrice = "1500000"
				return d
			},
			expected: false,
		},
		{
			name: "tên toàn khoảng trắng",
			draft: func() dto.RatePlanForm {
				d := NewRatePlanDraft()
				d.Name = "   "
				d.BasePrice = "1500000"
				return d
			},
			expected: false,
		},
		{
			name: "số đêm tối thiểu bằng 0",
			draft: func() dto.RatePlanForm {
				d := NewRatePlanDraft()
				d.Name = "Gói cuối tuần"
				d.BasePrice = "1500000"
				d.MinimumStay = 0
				return d
			},
			expected: false,
		},
		{
			name: "thiếu giá cơ bản",
			draft: func() dto.RatePlanForm {
				d := NewRatePlanDraft()
				d.Name = "Gói cuối tuần"
				return d
			},
			expected: false,
		},
		{
			name: "không phụ thuộc field của section khác",
			draft: func() dto.RatePlanForm {
				d := NewRatePlanDraft()
				d.Name = "Gói cuối tuần"
				d.BasePrice = "1500000"
				d.IsDateSpecific = true
				d.DateRanges = nil
				d.IsRefundable = true
				d.RefundWindow = 0
				return d
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanProceedRatePlan("general", tt.draft()))
		})
	}
}

func TestCanProceedRatePlanDuration(t *testing.T) {
	draft := NewRatePlanDraft()
	assert.True(t, CanProceedRatePlan("duration", draft))

	draft.IsDateSpecific = true
	draft.DateRanges = nil
	assert.False(t, CanProceedRatePlan("duration", draft))

	draft.DateRanges = []models.DateRange{{}}
	assert.True(t, CanProceedRatePlan("duration", draft))
}

func TestCanProceedRatePlanAlwaysTrueTabs(t *testing.T) {
	draft := NewRatePlanDraft()

	assert.True(t, CanProceedRatePlan("meals", draft))
	assert.True(t, CanProceedRatePlan("policies", draft))
	assert.True(t, CanProceedRatePlan("review", draft))
	// Tab lạ không chặn điều hướng
	assert.True(t, CanProceedRatePlan("unknown", draft))
}

func TestCanProceedRoom(t *testing.T) {
	draft := NewRoomDraft()

	// Bản nháp mặc định thiếu tên, loại phòng và loại giường
	assert.False(t, CanProceedRoom("basic", draft))

	draft.Name = "Phòng Deluxe"
	draft.Type = "deluxe"
	draft.BedType = "king"
	assert.True(t, CanProceedRoom("basic", draft))

	assert.False(t, CanProceedRoom("details", draft))
	draft.Size = "35"
	draft.Description = "Phòng rộng, nhìn ra vườn"
	assert.True(t, CanProceedRoom("details", draft))

	assert.True(t, CanProceedRoom("occupancy", draft))
	assert.True(t, CanProceedRoom("amenities", draft))
	assert.True(t, CanProceedRoom("images", draft))

	assert.False(t, CanProceedRoom("pricing", draft))
	draft.BasePrice = "2000000"
	assert.True(t, CanProceedRoom("pricing", draft))
}

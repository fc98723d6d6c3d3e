package wizard

import (
	"testing"

	"villa/constants"
	"villa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRatePlanDraftCollectsAllViolations(t *testing.T) {
	draft := NewRatePlanDraft()
	draft.Name = ""
	draft.BasePrice = ""
	draft.MinimumStay = 0
	draft.IsDateSpecific = true
	draft.DateRanges = nil

	report := ValidateRatePlanDraft(draft)

	assert.False(t, report.IsValid)
	assert.NotEmpty(t, report.Errors["general"])
	assert.NotEmpty(t, report.Errors["duration"])
	// Gom đủ mọi vi phạm chứ không dừng ở lỗi đầu tiên
	assert.GreaterOrEqual(t, len(report.Errors["general"]), 3)
}

func TestValidateRatePlanDraftValid(t *testing.T) {
	draft := NewRatePlanDraft()
	draft.Name = "Test"
	draft.MinimumStay = 1
	draft.BasePrice = "100"
	draft.ApplicableRooms = []uint{1}
	draft.RatePlanType = constants.RatePlanTypeStandard

	report := ValidateRatePlanDraft(draft)

	assert.True(t, report.IsValid)
	assert.Empty(t, report.Errors)
}

func TestValidateRatePlanDraftRequiresRooms(t *testing.T) {
	draft := NewRatePlanDraft()
	draft.Name = "Gói cuối tuần"
	draft.BasePrice = "1500000"
	draft.ApplicableRooms = nil

	report := ValidateRatePlanDraft(draft)

	assert.False(t, report.IsValid)
	assert.NotEmpty(t, report.Errors["general"])
}

func TestValidateRatePlanDraftRefundWindow(t *testing.T) {
	draft := NewRatePlanDraft()
	draft.Name = "Gói hoàn tiền"
	draft.BasePrice = "1000000"
	draft.ApplicableRooms = []uint{1}
	draft.IsRefundable = true
	draft.RefundWindow = 0

	report := ValidateRatePlanDraft(draft)

	assert.False(t, report.IsValid)
	assert.NotEmpty(t, report.Errors["policies"])
	assert.Empty(t, report.Errors["general"])
}

func TestValidateRatePlanDraftDateSpecificWithRanges(t *testing.T) {
	draft := NewRatePlanDraft()
	draft.Name = "Gói lễ"
	draft.BasePrice = "2000000"
	draft.ApplicableRooms = []uint{1, 2}
	draft.IsDateSpecific = true
	draft.DateRanges = []models.DateRange{{}}

	report := ValidateRatePlanDraft(draft)
	assert.True(t, report.IsValid)
}

func TestValidateRoomDraft(t *testing.T) {
	draft := NewRoomDraft()

	report := ValidateRoomDraft(draft)
	assert.False(t, report.IsValid)
	assert.NotEmpty(t, report.Errors["basic"])
	assert.NotEmpty(t, report.Errors["details"])
	assert.NotEmpty(t, report.Errors["pricing"])

	draft.Name = "Phòng Deluxe"
	draft.Type = "deluxe"
	draft.BedType = "king"
	draft.Size = "35"
	draft.Description = "Phòng rộng, nhìn ra vườn"
	draft.BasePrice = "2000000"

	report = ValidateRoomDraft(draft)
	assert.True(t, report.IsValid)
	assert.Empty(t, report.Errors)
}

func TestReportFlatten(t *testing.T) {
	draft := NewRatePlanDraft()
	draft.IsDateSpecific = true

	report := ValidateRatePlanDraft(draft)
	require.False(t, report.IsValid)

	flat := report.Flatten("general", "duration", "meals", "policies")
	assert.Equal(t, len(report.Errors["general"])+len(report.Errors["duration"]), len(flat))
}

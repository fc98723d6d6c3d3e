package wizard

import (
	"testing"

	"villa/constants"
	"villa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRatePlanDraftDefaults(t *testing.T) {
	draft := NewRatePlanDraft()

	assert.True(t, draft.IsActive)
	assert.Equal(t, 1, draft.MinimumStay)
	assert.Nil(t, draft.MaximumStay)
	assert.Equal(t, "0", draft.DiscountPercentage)
	assert.Equal(t, constants.RatePlanStatusActive, draft.RatePlanStatus)
	assert.Equal(t, constants.RatePlanTypeStandard, draft.RatePlanType)
	assert.Equal(t, constants.StayDurationCustom, draft.DurationType)
	assert.Equal(t, constants.MealPlanNone, draft.MealPlan)
	assert.Equal(t, constants.PaymentPrepaid, draft.PaymentTerms)
	assert.Equal(t, 7, draft.RefundWindow)
	assert.Empty(t, draft.ApplicableRooms)
	assert.Empty(t, draft.DateRanges)
}

func TestNewRoomDraftDefaults(t *testing.T) {
	draft := NewRoomDraft()

	assert.Equal(t, "1", draft.NumBeds)
	assert.Equal(t, "2", draft.MaxGuests)
	assert.Equal(t, "1", draft.Available)
	assert.Equal(t, "2", draft.TotalOccupancy)
	assert.Equal(t, "1", draft.NumBathrooms)
	assert.True(t, draft.Refundable)
	assert.Equal(t, constants.RoomStatusActive, draft.RoomStatus)
	require.Len(t, draft.Bathrooms, 1)
	assert.True(t, draft.Bathrooms[0].IsPrivate)
	assert.True(t, draft.Bathrooms[0].IsInRoom)
}

func TestStoreUpdateMergesOnlyGivenKeys(t *testing.T) {
	store := NewStore(NewRatePlanDraft())

	draft, err := store.Update(map[string]any{
		"name":      "Gói cuối tuần",
		"basePrice": "1500000",
	})
	require.NoError(t, err)

	assert.Equal(t, "Gói cuối tuần", draft.Name)
	assert.Equal(t, "1500000", draft.BasePrice)

	// Các field không được liệt kê giữ nguyên giá trị cũ
	assert.Equal(t, 1, draft.MinimumStay)
	assert.Equal(t, constants.RatePlanTypeStandard, draft.RatePlanType)
	assert.True(t, draft.IsActive)
}

func TestStoreUpdateRejectsMalformedPartial(t *testing.T) {
	store := NewStore(NewRatePlanDraft())

	_, err := store.Update(map[string]any{"name": "Gói hợp lệ"})
	require.NoError(t, err)

	// minimumStay là số, gửi chuỗi sai kiểu thì toàn bộ update bị từ chối
	_, err = store.Update(map[string]any{
		"minimumStay": "ba đêm",
		"name":        "Tên mới",
	})
	require.Error(t, err)

	draft := store.Draft()
	assert.Equal(t, "Gói hợp lệ", draft.Name)
	assert.Equal(t, 1, draft.MinimumStay)
}

func TestStoreUpdateRejectedMergeLeavesSharedFieldsUntouched(t *testing.T) {
	draft := NewRatePlanDraft()
	maxStay := 14
	draft.MaximumStay = &maxStay
	draft.DateRanges = []models.DateRange{{}}
	store := NewStore(draft)

	// basePrice là chuỗi: gửi số thì merge bị từ chối. Các key hợp lệ
	// đi kèm không được rỉ vào bản nháp qua field con trỏ hay slice
	_, err := store.Update(map[string]any{
		"maximumStay": 30,
		"dateRanges":  []map[string]any{},
		"basePrice":   123,
	})
	require.Error(t, err)

	kept := store.Draft()
	require.NotNil(t, kept.MaximumStay)
	assert.Equal(t, 14, *kept.MaximumStay)
	assert.Len(t, kept.DateRanges, 1)
	// Giá trị gốc bên ngoài store cũng không bị ghi đè
	assert.Equal(t, 14, maxStay)
}

func TestStoreReplace(t *testing.T) {
	store := NewStore(NewRatePlanDraft())

	hydrated := NewRatePlanDraft()
	hydrated.Name = "Gói từ server"
	hydrated.MinimumStay = 3
	store.Replace(hydrated)

	draft := store.Draft()
	assert.Equal(t, "Gói từ server", draft.Name)
	assert.Equal(t, 3, draft.MinimumStay)
}

func TestStoreUpdateRoomDraft(t *testing.T) {
	store := NewStore(NewRoomDraft())

	draft, err := store.Update(map[string]any{
		"name":      "Phòng Deluxe",
		"bathrooms": []map[string]any{{"isPrivate": false, "isInRoom": false}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Phòng Deluxe", draft.Name)
	require.Len(t, draft.Bathrooms, 1)
	assert.False(t, draft.Bathrooms[0].IsPrivate)
	assert.Equal(t, "1", draft.NumBeds)
}

package dto

import (
	"testing"
	"time"

	"villa/constants"
	"villa/errors"
	"villa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRatePlan() models.RatePlan {
	maxStay := 14
	return models.RatePlan{
		RatePlanID:         7,
		Name:               "Gói cuối tuần",
		Description:        "Ưu đãi cuối tuần",
		IsActive:           true,
		MinimumStay:        2,
		MaximumStay:        &maxStay,
		BasePrice:          1500000,
		DiscountPercentage: 10,
		RatePlanType:       constants.RatePlanTypeStandard,
		DurationType:       constants.StayDurationCustom,
		CustomStayLength:   1,
		MealPlan:           constants.MealPlanBreakfast,
		AmenitiesIncluded:  []string{"wifi", "pool", "spa"},
		CustomInclusions:   []string{"Đón sân bay"},
		RatePlanStatus:     constants.RatePlanStatusActive,
		IsRefundable:       true,
		RefundWindow:       7,
		PaymentTerms:       constants.PaymentPrepaid,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
		ApplicableRooms: []models.Room{
			{RoomID: 3, Name: "Phòng Deluxe"},
			{RoomID: 1, Name: "Phòng Garden"},
		},
	}
}

func TestRatePlanRoundTripPreservesRoomAndAmenitySets(t *testing.T) {
	plan := sampleRatePlan()

	form := RatePlanToForm(plan)
	rebuilt, err := form.ToModel()
	require.NoError(t, err)

	// So sánh theo tập, không phụ thuộc thứ tự
	assert.ElementsMatch(t, []uint{1, 3}, form.ApplicableRooms)
	assert.ElementsMatch(t, plan.AmenitiesIncluded, []string(rebuilt.AmenitiesIncluded))
	assert.ElementsMatch(t, plan.CustomInclusions, []string(rebuilt.CustomInclusions))

	assert.Equal(t, plan.Name, rebuilt.Name)
	assert.Equal(t, plan.BasePrice, rebuilt.BasePrice)
	assert.Equal(t, plan.DiscountPercentage, rebuilt.DiscountPercentage)
	assert.Equal(t, plan.MinimumStay, rebuilt.MinimumStay)
	require.NotNil(t, rebuilt.MaximumStay)
	assert.Equal(t, *plan.MaximumStay, *rebuilt.MaximumStay)
}

func TestRatePlanToFormStringifiesNumbers(t *testing.T) {
	plan := sampleRatePlan()

	form := RatePlanToForm(plan)

	assert.Equal(t, "1500000", form.BasePrice)
	assert.Equal(t, "10", form.DiscountPercentage)
}

func TestRatePlanFormToModelRejectsMalformedPrice(t *testing.T) {
	form := RatePlanToForm(sampleRatePlan())
	form.BasePrice = "một triệu rưỡi"

	_, err := form.ToModel()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidFormat, appErr.Code)
}

func TestRatePlanFormToModelDefaultsEmptyDiscount(t *testing.T) {
	form := RatePlanToForm(sampleRatePlan())
	form.DiscountPercentage = ""

	rebuilt, err := form.ToModel()
	require.NoError(t, err)
	assert.Zero(t, rebuilt.DiscountPercentage)
}

func TestRatePlanFormToModelDedupesCustomInclusions(t *testing.T) {
	form := RatePlanToForm(sampleRatePlan())
	form.CustomInclusions = []string{"Đón sân bay", "Spa", "Đón sân bay"}

	rebuilt, err := form.ToModel()
	require.NoError(t, err)
	assert.Equal(t, []string{"Đón sân bay", "Spa"}, []string(rebuilt.CustomInclusions))
}

func TestRatePlanFromModel(t *testing.T) {
	plan := sampleRatePlan()

	resp := RatePlanFromModel(plan)

	assert.Equal(t, plan.RatePlanID, resp.RatePlanID)
	assert.Equal(t, plan.BasePrice, resp.BasePrice)
	require.Len(t, resp.ApplicableRooms, 2)
	assert.Equal(t, "Phòng Deluxe", resp.ApplicableRooms[0].Name)
	assert.Equal(t, uint(3), resp.ApplicableRooms[0].RoomID)
}

package dto

import (
	"testing"

	"villa/constants"
	"villa/errors"
	"villa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoom() models.Room {
	return models.Room{
		RoomID:            5,
		Name:              "Phòng Deluxe",
		Type:              "deluxe",
		BedType:           "king",
		NumBeds:           2,
		Size:              "35",
		MaxGuests:         4,
		Available:         3,
		BasePrice:         2500000,
		Description:       "Phòng rộng, nhìn ra vườn",
		Refundable:        true,
		SelectedAmenities: []string{"wifi", "tv", "minibar"},
		Images:            []string{"https://cdn.example/a.jpg"},
		TotalOccupancy:    4,
		MaxAdults:         2,
		MaxChildren:       2,
		NumBathrooms:      1,
		Bathrooms:         models.BathroomList{{IsPrivate: true, IsInRoom: true}},
		RoomStatus:        constants.RoomStatusActive,
	}
}

func TestRoomRoundTripPreservesAmenitySet(t *testing.T) {
	room := sampleRoom()

	form := RoomToForm(room)
	rebuilt, err := form.ToModel()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string(room.SelectedAmenities), []string(rebuilt.SelectedAmenities))
	assert.ElementsMatch(t, []string(room.Images), []string(rebuilt.Images))

	assert.Equal(t, room.NumBeds, rebuilt.NumBeds)
	assert.Equal(t, room.MaxGuests, rebuilt.MaxGuests)
	assert.Equal(t, room.BasePrice, rebuilt.BasePrice)
	assert.Equal(t, room.TotalOccupancy, rebuilt.TotalOccupancy)
}

func TestRoomToFormStringifiesNumbers(t *testing.T) {
	form := RoomToForm(sampleRoom())

	assert.Equal(t, "2", form.NumBeds)
	assert.Equal(t, "4", form.MaxGuests)
	assert.Equal(t, "2500000", form.BasePrice)
}

func TestRoomFormToModelRejectsMalformedNumber(t *testing.T) {
	form := RoomToForm(sampleRoom())
	form.NumBeds = "hai"

	_, err := form.ToModel()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidFormat, appErr.Code)
}

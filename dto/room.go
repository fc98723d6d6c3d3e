package dto

import (
	"strconv"
	"time"

	"villa/errors"
	"villa/models"

	"github.com/lib/pq"
)

// RoomForm là DTO dạng form của phòng: mọi trường số nhập qua text input
// được giữ dưới dạng chuỗi
type RoomForm struct {
	Name              string            `json:"name"`
	Type              string            `json:"type"`
	BedType           string            `json:"bedType"`
	NumBeds           string            `json:"numBeds"`
	Size              string            `json:"size"`
	MaxGuests         string            `json:"maxGuests"`
	Available         string            `json:"available"`
	BasePrice         string            `json:"basePrice"`
	Description       string            `json:"description"`
	Refundable        bool              `json:"refundable"`
	Prepayment        bool              `json:"prepayment"`
	Breakfast         bool              `json:"breakfast"`
	SelectedAmenities []string          `json:"selectedAmenities"`
	Images            []string          `json:"images"`
	TotalOccupancy    string            `json:"totalOccupancy"`
	LimitAdults       bool              `json:"limitAdults"`
	MaxAdults         string            `json:"maxAdults"`
	LimitChildren     bool              `json:"limitChildren"`
	MaxChildren       string            `json:"maxChildren"`
	NumBathrooms      string            `json:"numBathrooms"`
	Bathrooms         []models.Bathroom `json:"bathrooms"`
	RoomStatus        string            `json:"roomStatus" binding:"omitempty,roomstatus"`
}

// RoomResponse là DTO dạng wire của phòng
type RoomResponse struct {
	RoomID            uint              `json:"roomId"`
	Name              string            `json:"name"`
	Type              string            `json:"type"`
	BedType           string            `json:"bedType"`
	NumBeds           int               `json:"numBeds"`
	Size              string            `json:"size"`
	MaxGuests         int               `json:"maxGuests"`
	Available         int               `json:"available"`
	BasePrice         float64           `json:"basePrice"`
	Description       string            `json:"description"`
	Refundable        bool              `json:"refundable"`
	Prepayment        bool              `json:"prepayment"`
	Breakfast         bool              `json:"breakfast"`
	SelectedAmenities []string          `json:"selectedAmenities"`
	Images            []string          `json:"images"`
	TotalOccupancy    int               `json:"totalOccupancy"`
	LimitAdults       bool              `json:"limitAdults"`
	MaxAdults         int               `json:"maxAdults"`
	LimitChildren     bool              `json:"limitChildren"`
	MaxChildren       int               `json:"maxChildren"`
	NumBathrooms      int               `json:"numBathrooms"`
	Bathrooms         []models.Bathroom `json:"bathrooms"`
	RoomStatus        string            `json:"roomStatus"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// RoomListItem là thông tin rút gọn của phòng cho dropdown chọn phòng
type RoomListItem struct {
	RoomID uint   `json:"roomId"`
	Name   string `json:"name"`
}

// RoomToForm chuyển entity phòng sang dạng form
func RoomToForm(room models.Room) RoomForm {
	return RoomForm{
		Name:              room.Name,
		Type:              room.Type,
		BedType:           room.BedType,
		NumBeds:           strconv.Itoa(room.NumBeds),
		Size:              room.Size,
		MaxGuests:         strconv.Itoa(room.MaxGuests),
		Available:         strconv.Itoa(room.Available),
		BasePrice:         strconv.FormatFloat(room.BasePrice, 'f', -1, 64),
		Description:       room.Description,
		Refundable:        room.Refundable,
		Prepayment:        room.Prepayment,
		Breakfast:         room.Breakfast,
		SelectedAmenities: []string(room.SelectedAmenities),
		Images:            []string(room.Images),
		TotalOccupancy:    strconv.Itoa(room.TotalOccupancy),
		LimitAdults:       room.LimitAdults,
		MaxAdults:         strconv.Itoa(room.MaxAdults),
		LimitChildren:     room.LimitChildren,
		MaxChildren:       strconv.Itoa(room.MaxChildren),
		NumBathrooms:      strconv.Itoa(room.NumBathrooms),
		Bathrooms:         []models.Bathroom(room.Bathrooms),
		RoomStatus:        room.RoomStatus,
	}
}

// ToModel chuyển form phòng sang entity, parse lại các chuỗi số
func (f RoomForm) ToModel() (models.Room, error) {
	numBeds, err := parseIntField(f.NumBeds, "Số giường")
	if err != nil {
		return models.Room{}, err
	}
	maxGuests, err := parseIntField(f.MaxGuests, "Số khách tối đa")
	if err != nil {
		return models.Room{}, err
	}
	available, err := parseIntField(f.Available, "Số phòng trống")
	if err != nil {
		return models.Room{}, err
	}
	basePrice, err := strconv.ParseFloat(f.BasePrice, 64)
	if err != nil {
		return models.Room{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Giá cơ bản không hợp lệ", err)
	}
	totalOccupancy, err := parseIntField(f.TotalOccupancy, "Tổng số người ở")
	if err != nil {
		return models.Room{}, err
	}
	maxAdults, err := parseIntField(f.MaxAdults, "Số người lớn tối đa")
	if err != nil {
		return models.Room{}, err
	}
	maxChildren, err := parseIntField(f.MaxChildren, "Số trẻ em tối đa")
	if err != nil {
		return models.Room{}, err
	}
	numBathrooms, err := parseIntField(f.NumBathrooms, "Số phòng tắm")
	if err != nil {
		return models.Room{}, err
	}

	return models.Room{
		Name:              f.Name,
		Type:              f.Type,
		BedType:           f.BedType,
		NumBeds:           numBeds,
		Size:              f.Size,
		MaxGuests:         maxGuests,
		Available:         available,
		BasePrice:         basePrice,
		Description:       f.Description,
		Refundable:        f.Refundable,
		Prepayment:        f.Prepayment,
		Breakfast:         f.Breakfast,
		SelectedAmenities: pq.StringArray(f.SelectedAmenities),
		Images:            pq.StringArray(f.Images),
		TotalOccupancy:    totalOccupancy,
		LimitAdults:       f.LimitAdults,
		MaxAdults:         maxAdults,
		LimitChildren:     f.LimitChildren,
		MaxChildren:       maxChildren,
		NumBathrooms:      numBathrooms,
		Bathrooms:         models.BathroomList(f.Bathrooms),
		RoomStatus:        f.RoomStatus,
	}, nil
}

// RoomFromModel chuyển entity phòng sang DTO response
func RoomFromModel(room models.Room) RoomResponse {
	return RoomResponse{
		RoomID:            room.RoomID,
		Name:              room.Name,
		Type:              room.Type,
		BedType:           room.BedType,
		NumBeds:           room.NumBeds,
		Size:              room.Size,
		MaxGuests:         room.MaxGuests,
		Available:         room.Available,
		BasePrice:         room.BasePrice,
		Description:       room.Description,
		Refundable:        room.Refundable,
		Prepayment:        room.Prepayment,
		Breakfast:         room.Breakfast,
		SelectedAmenities: []string(room.SelectedAmenities),
		Images:            []string(room.Images),
		TotalOccupancy:    room.TotalOccupancy,
		LimitAdults:       room.LimitAdults,
		MaxAdults:         room.MaxAdults,
		LimitChildren:     room.LimitChildren,
		MaxChildren:       room.MaxChildren,
		NumBathrooms:      room.NumBathrooms,
		Bathrooms:         []models.Bathroom(room.Bathrooms),
		RoomStatus:        room.RoomStatus,
		CreatedAt:         room.CreatedAt,
		UpdatedAt:         room.UpdatedAt,
	}
}

func parseIntField(value, label string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, label+" không hợp lệ", err)
	}
	return n, nil
}

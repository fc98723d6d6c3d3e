package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"villa/constants"

	"github.com/lib/pq"
)

// Bathroom là thông tin một phòng tắm của phòng
type Bathroom struct {
	IsPrivate bool `json:"isPrivate"`
	IsInRoom  bool `json:"isInRoom"`
}

// BathroomList lưu danh sách phòng tắm dưới dạng jsonb
type BathroomList []Bathroom

func (l BathroomList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *BathroomList) Scan(value interface{}) error {
	if value == nil {
		*l = BathroomList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("không thể scan kiểu %T vào BathroomList", value)
}

// Room là một phòng của villa
type Room struct {
	RoomID            uint           `json:"roomId" gorm:"primaryKey"`
	Name              string         `json:"name"`
	Type              string         `json:"type"`
	BedType           string         `json:"bedType"`
	NumBeds           int            `json:"numBeds"`
	Size              string         `json:"size"`
	MaxGuests         int            `json:"maxGuests"`
	Available         int            `json:"available"`
	BasePrice         float64        `json:"basePrice"`
	Description       string         `json:"description"`
	Refundable        bool           `json:"refundable"`
	Prepayment        bool           `json:"prepayment"`
	Breakfast         bool           `json:"breakfast"`
	SelectedAmenities pq.StringArray `json:"selectedAmenities" gorm:"type:text[]"`
	Images            pq.StringArray `json:"images" gorm:"type:text[]"`
	TotalOccupancy    int            `json:"totalOccupancy"`
	LimitAdults       bool           `json:"limitAdults"`
	MaxAdults         int            `json:"maxAdults"`
	LimitChildren     bool           `json:"limitChildren"`
	MaxChildren       int            `json:"maxChildren"`
	NumBathrooms      int            `json:"numBathrooms"`
	Bathrooms         BathroomList   `json:"bathrooms" gorm:"type:jsonb"`
	RoomStatus        string         `json:"roomStatus" gorm:"default:Active"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if !constants.IsValidRoomStatus(r.RoomStatus) {
		return fmt.Errorf("trạng thái phòng không hợp lệ: %s", r.RoomStatus)
	}
	return nil
}

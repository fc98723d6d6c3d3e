package dto

import "villa/models"

// RoomDropdownData gom toàn bộ metadata dropdown cho form tạo phòng
type RoomDropdownData struct {
	RoomTypes       []models.RoomType      `json:"roomTypes"`
	BedTypes        []models.BedType       `json:"bedTypes"`
	Amenities       []models.Amenity       `json:"amenities"`
	PrivacyPolicies []models.PrivacyPolicy `json:"privacyPolicies"`
}

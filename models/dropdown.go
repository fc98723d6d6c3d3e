package models

import "time"

// RoomType là loại phòng cho dropdown tạo phòng
type RoomType struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Value       string    `json:"value"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// BedType là loại giường cho dropdown tạo phòng
type BedType struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Value    string  `json:"value"`
	Label    string  `json:"label"`
	Icon     *string `json:"icon"`
	IsActive bool    `json:"isActive" gorm:"default:true"`
}

// Amenity là tiện nghi của phòng hoặc gói giá
type Amenity struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Value    string  `json:"value"`
	Label    string  `json:"label"`
	Category string  `json:"category"`
	Icon     *string `json:"icon"`
	IsActive bool    `json:"isActive" gorm:"default:true"`
}

// PrivacyPolicy là chính sách hiển thị khi tạo phòng
type PrivacyPolicy struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Value    string `json:"value"`
	Label    string `json:"label"`
	Content  string `json:"content"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}

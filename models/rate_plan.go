package models

import (
	"fmt"
	"time"

	"villa/constants"

	"github.com/lib/pq"
)

// RatePlan là gói giá áp dụng cho một hoặc nhiều phòng
type RatePlan struct {
	RatePlanID         uint           `json:"ratePlanId" gorm:"primaryKey"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	IsActive           bool           `json:"isActive" gorm:"default:true"`
	MinimumStay        int            `json:"minimumStay"`
	MaximumStay        *int           `json:"maximumStay,omitempty"`
	BasePrice          float64        `json:"basePrice"`
	DiscountPercentage float64        `json:"discountPercentage"`
	RatePlanType       string         `json:"ratePlanType"`
	IsDateSpecific     bool           `json:"isDateSpecific"`
	DateRanges         DateRangeList  `json:"dateRanges" gorm:"type:jsonb"`
	HasBlackoutDates   bool           `json:"hasBlackoutDates"`
	BlackoutDates      DateRangeList  `json:"blackoutDates" gorm:"type:jsonb"`
	DurationType       string         `json:"durationType"`
	CustomStayLength   int            `json:"customStayLength"`
	MealPlan           string         `json:"mealPlan"`
	AmenitiesIncluded  pq.StringArray `json:"amenitiesIncluded" gorm:"type:text[]"`
	CustomInclusions   pq.StringArray `json:"customInclusions" gorm:"type:text[]"`
	RatePlanStatus     string         `json:"ratePlanStatus" gorm:"default:Active"`
	IsRefundable       bool           `json:"isRefundable"`
	RefundWindow       int            `json:"refundWindow"`
	CancellationPolicy string         `json:"cancellationPolicy"`
	PaymentTerms       string         `json:"paymentTerms"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	ApplicableRooms    []Room         `json:"applicableRooms" gorm:"many2many:rate_plan_rooms;"`
}

func (r *RatePlan) ValidateType() error {
	if !constants.IsValidRatePlanType(r.RatePlanType) {
		return fmt.Errorf("loại gói giá không hợp lệ: %s", r.RatePlanType)
	}
	return nil
}

func (r *RatePlan) ValidateStatus() error {
	if !constants.IsValidRatePlanStatus(r.RatePlanStatus) {
		return fmt.Errorf("trạng thái gói giá không hợp lệ: %s", r.RatePlanStatus)
	}
	return nil
}

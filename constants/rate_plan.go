package constants

// Loại gói giá
const (
	RatePlanTypeAll           = "All Types"
	RatePlanTypeStandard      = "Standard"
	RatePlanTypeDateSpecific  = "Date Specific"
	RatePlanTypeDurationBased = "Duration Based"
)

// Trạng thái gói giá
const (
	RatePlanStatusActive   = "Active"
	RatePlanStatusInactive = "Inactive"
)

// Gói ăn uống
const (
	MealPlanNone         = "none"
	MealPlanBreakfast    = "breakfast"
	MealPlanHalfBoard    = "half_board"
	MealPlanFullBoard    = "full_board"
	MealPlanAllInclusive = "all_inclusive"
)

// Loại thời gian lưu trú
const (
	StayDurationWeekly  = "weekly"
	StayDurationMonthly = "monthly"
	StayDurationCustom  = "custom"
)

// Hình thức thanh toán
const (
	PaymentPayAtProperty  = "pay_at_property"
	PaymentPrepaid        = "prepaid"
	PaymentPartialDeposit = "partial_deposit"
)

// IsValidRatePlanType kiểm tra loại gói giá hợp lệ (không tính "All Types")
func IsValidRatePlanType(t string) bool {
	switch t {
	case RatePlanTypeStandard, RatePlanTypeDateSpecific, RatePlanTypeDurationBased:
		return true
	}
	return false
}

// IsValidRatePlanStatus kiểm tra trạng thái gói giá hợp lệ
func IsValidRatePlanStatus(s string) bool {
	return s == RatePlanStatusActive || s == RatePlanStatusInactive
}

// CanonicalRatePlanStatus chuẩn hóa giá trị filter trạng thái từ client
// ("active"/"Active"...) về giá trị enum. Trả về false khi không nhận diện được
func CanonicalRatePlanStatus(s string) (string, bool) {
	switch s {
	case RatePlanStatusActive, "active":
		return RatePlanStatusActive, true
	case RatePlanStatusInactive, "inactive":
		return RatePlanStatusInactive, true
	}
	return "", false
}

// IsValidMealPlan kiểm tra gói ăn uống hợp lệ
func IsValidMealPlan(m string) bool {
	switch m {
	case MealPlanNone, MealPlanBreakfast, MealPlanHalfBoard, MealPlanFullBoard, MealPlanAllInclusive:
		return true
	}
	return false
}

// IsValidStayDuration kiểm tra loại thời gian lưu trú hợp lệ
func IsValidStayDuration(d string) bool {
	switch d {
	case StayDurationWeekly, StayDurationMonthly, StayDurationCustom:
		return true
	}
	return false
}

// IsValidPaymentTerms kiểm tra hình thức thanh toán hợp lệ
func IsValidPaymentTerms(p string) bool {
	switch p {
	case PaymentPayAtProperty, PaymentPrepaid, PaymentPartialDeposit:
		return true
	}
	return false
}

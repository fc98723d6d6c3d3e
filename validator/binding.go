package validator

import (
	"villa/constants"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations đăng ký các tag validate enum cho gin binding
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("rateplantype", func(fl validator.FieldLevel) bool {
		return constants.IsValidRatePlanType(fl.Field().String())
	})
	v.RegisterValidation("rateplanstatus", func(fl validator.FieldLevel) bool {
		return constants.IsValidRatePlanStatus(fl.Field().String())
	})
	v.RegisterValidation("mealplan", func(fl validator.FieldLevel) bool {
		return constants.IsValidMealPlan(fl.Field().String())
	})
	v.RegisterValidation("stayduration", func(fl validator.FieldLevel) bool {
		return constants.IsValidStayDuration(fl.Field().String())
	})
	v.RegisterValidation("paymentterms", func(fl validator.FieldLevel) bool {
		return constants.IsValidPaymentTerms(fl.Field().String())
	})
	v.RegisterValidation("roomstatus", func(fl validator.FieldLevel) bool {
		return constants.IsValidRoomStatus(fl.Field().String())
	})
}

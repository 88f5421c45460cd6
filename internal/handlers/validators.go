package handlers

import (
	"sync"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the `inn` and `phone` binding tags to gin's validator.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("inn", func(fl validator.FieldLevel) bool {
			return domain.ValidateINN(fl.Field().String()) == nil
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return domain.ValidatePhone(fl.Field().String()) == nil
		})
	})
}

// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var zipRegex = regexp.MustCompile(`^\d{5}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("strategy", validateStrategy)
		_ = v.RegisterValidation("exit_strategy", validateExitStrategy)
		_ = v.RegisterValidation("rehab_tier", validateRehabTier)
		_ = v.RegisterValidation("condition_grade", validateConditionGrade)
		_ = v.RegisterValidation("zip5", validateZIP)
	}
}

func validateStrategy(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "long_term", "voucher", "short_term":
		return true
	}
	return false
}

func validateExitStrategy(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "sell", "refinance":
		return true
	}
	return false
}

func validateRehabTier(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "light", "liteplus", "medium", "heavy", "fullgut":
		return true
	}
	return false
}

func validateConditionGrade(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "new", "good", "fair", "poor", "needs_replacement":
		return true
	}
	return false
}

func validateZIP(fl validator.FieldLevel) bool {
	return zipRegex.MatchString(fl.Field().String())
}

// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"phonebot/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("record_status", validateRecordStatus)
	_ = v.RegisterValidation("user_status", validateUserStatus)
}

func validateRecordStatus(fl validator.FieldLevel) bool {
	return models.RecordStatus(fl.Field().String()).Valid()
}

func validateUserStatus(fl validator.FieldLevel) bool {
	return models.UserStatus(fl.Field().String()).Valid()
}

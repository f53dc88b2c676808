package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// txdate validates the ISO calendar date form (YYYY-MM-DD) used by
// transaction dates; monthly reports truncate this value to its first seven
// characters, so the format is load-bearing.
func txdate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// RegisterCustomValidators attaches application-specific rules to gin's
// binding validator. Called once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("txdate", txdate)
}

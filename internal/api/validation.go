package api

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var timeUnits = map[string]bool{
	"minute": true,
	"hour":   true,
	"day":    true,
	"week":   true,
	"month":  true,
	"year":   true,
}

// RegisterValidations installs the custom binding tags on gin's validator.
// Call once before serving requests (and in handler tests that bind payloads
// using these tags).
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}

	return v.RegisterValidation("timeunit", func(fl validator.FieldLevel) bool {
		return timeUnits[fl.Field().String()]
	})
}

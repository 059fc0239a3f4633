package http

import (
	"github.com/go-playground/validator/v10"

	"artfolio/internal/lib/slug"
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns the echo validator with the "slug" rule registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.Valid(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

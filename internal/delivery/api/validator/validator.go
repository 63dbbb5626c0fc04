// Package validator adapts go-playground/validator to echo and reports failures as domain validation errors.
package validator

import (
	"reflect"
	"strings"

	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/i18n"
	"brewmenu/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so field errors match the request body.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		default:
			return name
		}
	})

	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("decimal", isDecimal)
	_ = v.RegisterValidation("language", isLanguage)

	return &CustomValidator{validate: v}
}

// Validate returns a *domainerrors.ValidationError listing every failed field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.WithStack(err)
	}

	verr := domainerrors.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), reason(fe))
	}

	return verr
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "decimal":
		return "must be a decimal number"
	case "language":
		return "unsupported language"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func isDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())

	return err == nil
}

func isLanguage(fl validator.FieldLevel) bool {
	_, ok := i18n.Parse(fl.Field().String())

	return ok
}

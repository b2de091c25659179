// Package validate envuelve go-playground/validator con mensajes legibles para la API.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError error de validación de un campo.
type FieldError struct {
	Field string
	Tag   string
	Msg   string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Msg)
}

// FieldErrors lista de errores de validación; implementa error.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	s := make([]string, 0, len(e))
	for _, fe := range e {
		s = append(s, fe.Error())
	}
	return strings.Join(s, ", ")
}

// Has indica si algún campo falló con la regla indicada.
func (e FieldErrors) Has(tag string) bool {
	for _, fe := range e {
		if fe.Tag == tag {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// vpayment = método de pago soportado
	_ = v.RegisterValidation("vpayment", func(fl validator.FieldLevel) bool {
		switch strings.TrimSpace(fl.Field().String()) {
		case "cash", "gcash":
			return true
		}
		return false
	})
	// nombres de campo según el tag json, para que el cliente los reconozca
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct valida in y devuelve FieldErrors si alguna regla falla.
func Struct(in any) error {
	if err := validate.Struct(in); err != nil {
		var valErrs validator.ValidationErrors
		if !errors.As(err, &valErrs) {
			return err
		}
		errs := make(FieldErrors, 0, len(valErrs))
		for _, fe := range valErrs {
			errs = append(errs, FieldError{Field: fe.Field(), Tag: fe.Tag(), Msg: messageFor(fe.Tag(), fe.Param())})
		}
		return errs
	}
	return nil
}

func messageFor(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", param)
	case "max":
		return fmt.Sprintf("must be at most %s", param)
	case "vpayment":
		return "must be cash or gcash"
	case "latitude", "longitude":
		return "must be a valid coordinate"
	default:
		return fmt.Sprintf("invalid value tag %s", tag)
	}
}

package service

import (
	"errors"
	"reflect"
	"strings"

	apperrors "salesdesk-backend/internal/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var translator ut.Translator

// NewValidator builds the request validator. Field errors are reported under
// their JSON names with English messages.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	uni := ut.New(en.New())
	translator, _ = uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(v, translator)
	return v
}

// validateStruct runs the validator and converts its output into
// apperrors.ValidationErrors keyed by JSON field name
func validateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("", err.Error())
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		if translator != nil {
			fields[key] = fe.Translate(translator)
		} else {
			fields[key] = fe.Error()
		}
	}
	return &apperrors.ValidationErrors{Fields: fields}
}

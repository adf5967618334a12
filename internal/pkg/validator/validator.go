package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/ecotravel-admin/internal/pkg/errors"
)

var validate *validator.Validate

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("isodate", isISODate)
	validate.RegisterTagNameFunc(jsonFieldName)
}

// Validate - валидация структуры, ошибки приводятся к AppError
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return toAppError(err)
	}
	return nil
}

// Var - валидация одиночного значения по тегу
func Var(field string, value interface{}, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return toAppError(prefixField(field, err))
	}
	return nil
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// isISODate принимает YYYY-MM-DD или дату-время в ISO 8601
func isISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if dateOnlyPattern.MatchString(value) {
		_, err := time.Parse("2006-01-02", value)
		return err == nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

type fieldError struct {
	field string
	err   error
}

func (e fieldError) Error() string { return e.err.Error() }

func prefixField(field string, err error) error {
	return fieldError{field: field, err: err}
}

func toAppError(err error) error {
	field := ""
	if fe, ok := err.(fieldError); ok {
		field = fe.field
		err = fe.err
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.ErrInvalidRequest.Wrap(err)
	}

	messages := make([]string, 0, len(verrs))
	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if name == "" {
			name = field
		}
		msg := describe(name, fe)
		messages = append(messages, msg)
		fields[name] = fe.Tag()
	}

	return apperrors.ErrValidationFailed.
		WithMessage("Validation errors: " + strings.Join(messages, ", ")).
		WithDetails(map[string]interface{}{"fields": fields})
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "isodate":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD) or ISO date-time", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

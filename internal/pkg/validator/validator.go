package validator

import (
	stderrors "errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("date", validateDate)
}

// validateDate - календарная дата в формате YYYY-MM-DD
func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// FieldErrors - ошибки валидации в виде поле -> правило
func FieldErrors(err error) map[string]interface{} {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return fields
}

// HasFieldError reports whether validation failed on the field (case-insensitive)
func HasFieldError(err error, field string) bool {
	_, ok := FieldErrors(err)[strings.ToLower(field)]
	return ok
}

package validator

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// В деталях ошибок используем имена полей формы, а не Go-структуры
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	if err := validate.RegisterValidation("float", isFloat); err != nil {
		panic(err)
	}
}

// isFloat - строка является конечным десятичным числом (".5", "-23.55", "1e-3")
func isFloat(fl validator.FieldLevel) bool {
	v, err := strconv.ParseFloat(fl.Field().String(), 64)
	return err == nil && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// FieldErrors - валидация структуры с накоплением всех нарушений.
// Возвращает карту "поле -> нарушенное правило", пустую если ошибок нет.
func FieldErrors(s interface{}) (map[string]string, error) {
	fields := make(map[string]string)

	err := validate.Struct(s)
	if err == nil {
		return fields, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fe.Field()] = rule
	}

	return fields, nil
}

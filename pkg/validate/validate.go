package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator plugs go-playground/validator into echo and reports the
// first failing field by its json name.
type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	return errors.New(message(fieldErrs[0]))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("O campo %q é obrigatório", fe.Field())
	case "gte", "min":
		return fmt.Sprintf("O campo %q deve ser maior ou igual a %s", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("O campo %q deve ser menor ou igual a %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("Valor inválido para o campo %q. Use um de: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("O campo %q é inválido", fe.Field())
	}
}

// Package validation aplica as tags `validate` dos DTOs e converte as falhas
// para o ValidationError da aplicação.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	apperror "binstock/internal/errors"
)

// Validator embrulha o validator do go-playground; é seguro para uso concorrente.
type Validator struct {
	v *validator.Validate
}

// New cria o Validator usando o nome JSON dos campos nas mensagens.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct valida o DTO. Devolve nil ou um *apperror.ValidationError descrevendo a primeira falha.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperror.NewValidationError(err.Error())
	}
	return apperror.NewValidationError(describe(validationErrors[0]))
}

func describe(fe validator.FieldError) string {
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// fieldPath remove o nome do struct raiz: "ReceiptRequest.products[0].qty" -> "products[0].qty".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

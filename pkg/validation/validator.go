package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia única; validator/v10 es seguro para uso concurrente.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Usar el nombre del tag json en los mensajes de error en vez del nombre del campo Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct valida un DTO según sus tags `validate`. Retorna nil si es válido.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// Details convierte los errores de validator/v10 en un mapa campo→mensaje
// apto para incluir en la respuesta HTTP de error.
func Details(err error) map[string]string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"body": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "formato de email inválido"
	case "min":
		return "debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return "supera el máximo de " + fe.Param()
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "uuid":
		return "debe ser un UUID válido"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	default:
		return "inválido (" + fe.Tag() + ")"
	}
}

package validators

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// TipoParceiro aceita INDUSTRIA ou DISTRIBUIDOR
func TipoParceiro(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val == "INDUSTRIA" || val == "DISTRIBUIDOR"
}

// Data aceita datas no formato AAAA-MM-DD
func Data(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(dateLayout, val)
	return err == nil
}

// Register registra as validações customizadas
func Register(validate *validator.Validate) error {
	if err := validate.RegisterValidation("tipoparceiro", TipoParceiro); err != nil {
		return err
	}
	return validate.RegisterValidation("data", Data)
}

// RegisterBindings registra as validações no validador usado pelo gin
func RegisterBindings() error {
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validador do gin não é go-playground/validator")
	}
	return Register(validate)
}

// FieldErrors descreve os erros de validação por campo; nil quando err não é de validação
func FieldErrors(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	problems := make(map[string]string, len(ve))
	for _, fe := range ve {
		field := toSnake(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = "campo obrigatório"
		case "email":
			problems[field] = "email inválido"
		case "min":
			problems[field] = "mínimo de " + fe.Param() + " caracteres"
		case "tipoparceiro":
			problems[field] = "use INDUSTRIA ou DISTRIBUIDOR"
		case "data":
			problems[field] = "use o formato AAAA-MM-DD"
		default:
			problems[field] = "valor inválido"
		}
	}
	return problems
}

func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

package customvalidator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var rutPattern = regexp.MustCompile(`^\d{1,8}-[\dkK]$`)

// isValidRUT valida el formato y el dígito verificador (módulo 11) de un RUT chileno.
// Acepta el formato sin puntos: "12345678-5", "1-9".
func isValidRUT(fl validator.FieldLevel) bool {
	rut := strings.ReplaceAll(fl.Field().String(), ".", "")
	if !rutPattern.MatchString(rut) {
		return false
	}

	parts := strings.Split(rut, "-")
	body, dv := parts[0], strings.ToLower(parts[1])

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		digit, _ := strconv.Atoi(string(body[i]))
		sum += digit * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	expected := 11 - (sum % 11)
	switch expected {
	case 11:
		return dv == "0"
	case 10:
		return dv == "k"
	default:
		return dv == strconv.Itoa(expected)
	}
}

// RegisterCustomValidations registra todas las reglas propias en el validador.
func RegisterCustomValidations(v *validator.Validate) error {
	registerNullTypes(v)
	if err := v.RegisterValidation("rut", isValidRUT); err != nil {
		return err
	}
	return nil
}

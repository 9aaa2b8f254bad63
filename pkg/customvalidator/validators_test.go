package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rutHolder struct {
	RUT string `validate:"rut"`
}

func TestIsValidRUT(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))

	valid := []string{
		"1-9",
		"12345678-5",
		"15678234-3",
		"17890123-0",
		"6-K", // dígito verificador K, mayúscula o minúscula
		"6-k",
		"12.345.678-5", // se aceptan los puntos de miles
	}
	for _, rut := range valid {
		assert.NoError(t, v.Struct(rutHolder{RUT: rut}), "el RUT %q debería ser válido", rut)
	}

	invalid := []string{
		"",
		"abc",
		"12345678-9",  // dígito verificador incorrecto
		"1-k",         // a 1 le corresponde 9
		"123456789-1", // cuerpo de más de 8 dígitos
		"12345678",    // sin guión
		"12345678-",   // sin dígito verificador
	}
	for _, rut := range invalid {
		assert.Error(t, v.Struct(rutHolder{RUT: rut}), "el RUT %q debería ser rechazado", rut)
	}
}

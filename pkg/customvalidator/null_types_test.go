package customvalidator

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullHolder struct {
	Cost  null.Float64 `validate:"omitempty,gte=0"`
	Email null.String  `validate:"omitempty,email"`
	Ref   null.Int64   `validate:"omitempty,gt=0"`
}

func TestNullTypesValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))

	t.Run("campos sin valor pasan por omitempty", func(t *testing.T) {
		assert.NoError(t, v.Struct(nullHolder{}))
	})

	t.Run("valores válidos", func(t *testing.T) {
		assert.NoError(t, v.Struct(nullHolder{
			Cost:  null.Float64From(85000),
			Email: null.StringFrom("ventas@acme.cl"),
			Ref:   null.Int64From(7),
		}))
	})

	t.Run("costo negativo rechazado", func(t *testing.T) {
		assert.Error(t, v.Struct(nullHolder{Cost: null.Float64From(-5)}))
	})

	t.Run("correo inválido rechazado", func(t *testing.T) {
		assert.Error(t, v.Struct(nullHolder{Email: null.StringFrom("no-es-correo")}))
	})

	t.Run("referencia negativa rechazada", func(t *testing.T) {
		assert.Error(t, v.Struct(nullHolder{Ref: null.Int64From(-1)}))
	})
}

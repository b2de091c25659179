package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rider-tracker/pkg/validate"
)

type signup struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Method   string `json:"paymentMethod" validate:"omitempty,vpayment"`
}

func TestStruct_OK(t *testing.T) {
	assert.NoError(t, validate.Struct(signup{Name: "Ana", Email: "ana@x.co", Password: "secreto", Method: "gcash"}))
}

func TestStruct_Errores(t *testing.T) {
	err := validate.Struct(signup{Email: "no-mail", Password: "123", Method: "card"})
	require.Error(t, err)

	var fe validate.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Len(t, fe, 4)
	assert.True(t, fe.Has("required"))
	assert.True(t, fe.Has("vpayment"))
	assert.False(t, fe.Has("max"))
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "email must be a valid email address")
	assert.Contains(t, err.Error(), "password must be at least 6")
	assert.Contains(t, err.Error(), "paymentMethod must be cash or gcash")
}

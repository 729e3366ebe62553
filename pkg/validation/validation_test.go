package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/pkg/validation"
)

type sampleRequest struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required,min=8"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

func strPtr(s string) *string { return &s }

// Los nombres de campo en los errores salen del tag json, no del nombre Go.
func TestCheck_UsaNombresJSON(t *testing.T) {
	v := validation.New()

	errs := v.Check(sampleRequest{Password: "12345678"})
	require.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Field)
	assert.Equal(t, "username is required", errs[0].Message)
}

func TestCheck_MinSobreString(t *testing.T) {
	v := validation.New()

	errs := v.Check(sampleRequest{Username: "alice", Password: "corta"})
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
	assert.Contains(t, errs[0].Message, "at least 8 characters")
}

// Un puntero nil con omitempty no genera violación; uno presente sí se valida.
func TestCheck_PunteroOpcional(t *testing.T) {
	v := validation.New()

	assert.Empty(t, v.Check(sampleRequest{Username: "alice", Password: "12345678"}))

	errs := v.Check(sampleRequest{Username: "alice", Password: "12345678", Email: strPtr("no-es-email")})
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "email must be a valid email address", errs[0].Message)
}

func TestCheck_ValidoRetornaVacio(t *testing.T) {
	v := validation.New()
	assert.Empty(t, v.Check(sampleRequest{Username: "alice", Password: "12345678", Email: strPtr("a@x.com")}))
}

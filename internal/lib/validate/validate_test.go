package validate

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Username string `validate:"required,nospaces"`
	Password string `validate:"required,nospaces"`
}

func TestNew_NoSpaces(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(credentials{Username: "user", Password: "secret"}))

	err := v.Struct(credentials{Username: "user name", Password: "secret"})
	require.Error(t, err)
	errs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "Username", errs[0].Field())
	assert.Equal(t, TagNoSpaces, errs[0].ActualTag())
}

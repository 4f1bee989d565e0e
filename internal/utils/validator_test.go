package utils

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestIsValidPassword(t *testing.T) {
	cases := map[string]bool{
		"abcd123!":    true,
		"Passw0rd#":   true,
		"short1!":     false,
		"onlyletters": false,
		"12345678!":   false,
		"abcdefg1":    false,
		"abcd 123!":   false,
		"abcd123!^":   false,
	}
	for password, want := range cases {
		assert.Equal(t, want, IsValidPassword(password), password)
	}
}

func TestValidatorPasswordTag(t *testing.T) {
	InitValidator()
	type form struct {
		Password string `validate:"required,password"`
	}
	require.NoError(t, Validate.Struct(form{Password: "abcd123!"}))
	require.Error(t, Validate.Struct(form{Password: "abcd1234"}))
}

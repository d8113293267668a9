package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidation(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	valid := RegisterRequest{Name: "John Doe", Email: "john@example.com", Password: "P@ssw0rd1"}
	assert.NoError(t, v.Struct(&valid))

	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"single word name", func(r *RegisterRequest) { r.Name = "John" }},
		{"digits in name", func(r *RegisterRequest) { r.Name = "John D03" }},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *RegisterRequest) { r.Password = "P@ss1" }},
		{"no digit in password", func(r *RegisterRequest) { r.Password = "P@ssword!" }},
		{"no special in password", func(r *RegisterRequest) { r.Password = "Passw0rd1" }},
		{"no letter in password", func(r *RegisterRequest) { r.Password = "12345678@" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, v.Struct(&req))
		})
	}
}

func TestUpdateUserRequestValidation_OmittedFields(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	assert.NoError(t, v.Struct(&UpdateUserRequest{}), "all fields optional")

	bad := "x"
	assert.Error(t, v.Struct(&UpdateUserRequest{Password: &bad}), "present fields are still checked")
}

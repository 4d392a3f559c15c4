package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/intelli-scan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewRequestValidator(t *testing.T) {
	assert.NotPanics(t, func() {
		require.NotNil(t, NewRequestValidator())
	})
}

func TestNewRequestValidator_RegistrationFailure(t *testing.T) {
	v, err := newRequestValidator("")
	assert.Error(t, err)
	assert.Nil(t, v)
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"john@example.com", true},
		{"john.doe+tag@mail.example.org", true},
		{"a_b-c@x-y.io", true},
		{"", false},
		{"a@", false},
		{"john.example.com", false},
		{"john@example", false},
		{"john doe@example.com", false},
		{"john@exa mple.com", false},
		{strings.Repeat("a", 250) + "@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestValidate_RegisterRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	valid := models.RegisterRequest{Name: "John Doe", Email: "john@example.com", Password: "secret1"}

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr bool
		field   string
	}{
		{name: "valid", mutate: func(r *models.RegisterRequest) {}},
		{name: "missing name", mutate: func(r *models.RegisterRequest) { r.Name = "" }, wantErr: true, field: "name"},
		{name: "long name", mutate: func(r *models.RegisterRequest) { r.Name = strings.Repeat("n", 256) }, wantErr: true, field: "name"},
		{name: "missing email", mutate: func(r *models.RegisterRequest) { r.Email = "" }, wantErr: true, field: "email"},
		{name: "bad email", mutate: func(r *models.RegisterRequest) { r.Email = "not-an-email" }, wantErr: true, field: "email"},
		{name: "short password", mutate: func(r *models.RegisterRequest) { r.Password = "123" }, wantErr: true, field: "password"},
		{name: "missing password", mutate: func(r *models.RegisterRequest) { r.Password = "" }, wantErr: true, field: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidData)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_RegisterRequest_Pointer(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), &models.RegisterRequest{Name: "x", Email: "x@y.z", Password: "secret1"})
	assert.NoError(t, err)
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.c", Password: "p"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "p"}), ErrInvalidData)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.c"}), ErrInvalidData)
}

func TestValidate_UpdateUserRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("empty update", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.UpdateUserRequest{}), ErrNoFieldsToUpdate)
		assert.ErrorIs(t, v.Validate(ctx, &models.UpdateUserRequest{}), ErrNoFieldsToUpdate)
	})

	t.Run("name only", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.UpdateUserRequest{Name: strPtr("Jane")}))
	})

	t.Run("bad email", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdateUserRequest{Email: strPtr("jane")})
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("short password", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdateUserRequest{Password: strPtr("1")})
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("empty name", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdateUserRequest{Name: strPtr("")})
		assert.ErrorIs(t, err, ErrInvalidData)
	})
}

func TestValidate_PartialFields(t *testing.T) {
	v := NewRequestValidator()

	req := models.RegisterRequest{Name: "", Email: "john@example.com", Password: "secret1"}

	assert.NoError(t, v.Validate(context.Background(), req, "Email", "Password"))
	assert.ErrorIs(t, v.Validate(context.Background(), req, "Name"), ErrInvalidData)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.UpdateUserRequest)(nil)), ErrUnsupportedType)
}

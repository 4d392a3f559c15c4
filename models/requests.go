package models

// RegisterRequest is the body of POST /api/user.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,intelli_email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Credentials converts the request into transient login credentials.
func (r LoginRequest) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}

// UpdateUserRequest is the body of PUT /api/user.
// Only non-nil fields are changed.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,intelli_email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=128"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Password == nil
}

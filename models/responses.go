package models

// AuthResponse is returned by login, registration and the OAuth callback.
type AuthResponse struct {
	UserID    int64  `json:"user_id"`
	Message   string `json:"message"`
	AuthToken string `json:"auth_token"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// NewUserResponse builds the public view of user.
func NewUserResponse(user User) UserResponse {
	return UserResponse{UserID: user.ID, Name: user.Name, Email: user.Email}
}

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

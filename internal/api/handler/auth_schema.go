package handler

// registerRequest is the payload for POST /auth/register.
type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Currency string `json:"currency" validate:"omitempty,oneof=USD EUR GBP JPY CAD AUD INR CNY"`
}

// loginRequest is the payload for POST /auth/login.
type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateProfileRequest is the payload for PUT /auth/profile. All fields are
// optional; a new password additionally requires the current one.
type updateProfileRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"            validate:"omitempty,email"`
	Currency        *string `json:"currency"         validate:"omitempty,oneof=USD EUR GBP JPY CAD AUD INR CNY"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword"      validate:"omitempty,min=6"`
}

// userEnvelope wraps a user in responses that carry no token.
type userEnvelope struct {
	User any `json:"user"`
}

// authEnvelope wraps a user plus a freshly issued bearer token.
type authEnvelope struct {
	User  any    `json:"user"`
	Token string `json:"token"`
}

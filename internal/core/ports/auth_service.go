package ports

import (
	"context"

	"github.com/fintrack/finance-tracker/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Currency string // optional; defaults to domain.DefaultCurrency
}

// UpdateProfileInput carries a partial profile update. Nil pointers mean
// "leave unchanged". NewPassword requires CurrentPassword.
type UpdateProfileInput struct {
	Name            *string
	Email           *string
	Currency        *string
	CurrentPassword *string
	NewPassword     *string
}

// AuthResult pairs a user with a freshly issued bearer token.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
}

package ports

// TokenService mints and verifies stateless bearer tokens. Verification
// failures surface as domain.ErrInvalidToken, never as a panic.
type TokenService interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

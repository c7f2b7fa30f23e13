package auth

import "context"

// Service exchanges the owner password for an access token.
type Service interface {
	// Login verifies the password and returns a signed token, or
	// ErrInvalidCredentials.
	Login(ctx context.Context, password string) (string, error)
}

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	passwordHash string
	verifier     PasswordVerifier
	jwt          JWTService
}

// NewService creates an auth Service around the configured bcrypt hash.
func NewService(passwordHash string, verifier PasswordVerifier, jwt JWTService) Service {
	if verifier == nil {
		panic("verifier cannot be nil")
	}
	if jwt == nil {
		panic("jwt cannot be nil")
	}
	return &serviceImpl{
		passwordHash: passwordHash,
		verifier:     verifier,
		jwt:          jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, password string) (string, error) {
	if err := s.verifier.Compare(s.passwordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken(ctx)
}

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuthUseCase describes registration and authentication behavior.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenGenerator
	dummy  string
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens TokenGenerator) AuthUseCase {
	// Digest compared against when the email is unknown, so both login
	// failure paths cost one hash comparison.
	dummy, _ := hasher.Hash("3mJp8xQvTz")
	return &authService{repo: repo, hasher: hasher, tokens: tokens, dummy: dummy}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (User, error) {
	if err := validateName(name); err != nil {
		return User{}, err
	}
	if err := validateEmail(email); err != nil {
		return User{}, err
	}
	if err := validatePassword(password); err != nil {
		return User{}, err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	// Uniqueness is left to the repository constraint; no pre-check read.
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password must be indistinguishable.
		s.hasher.Verify(password, s.dummy)
		return "", ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Preetham1508/DogHTTPImages/internal/shared"
	"github.com/Preetham1508/DogHTTPImages/internal/token"
)

// Service wraps signup and login business rules.
type Service struct {
	repo   Repository
	hasher Hasher
	tokens *token.Service
}

// NewService constructs a new Service.
func NewService(repo Repository, hasher Hasher, tokens *token.Service) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// Signup registers a new account and issues a session token for it.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", shared.ErrValidation)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	user := &User{Name: name, Email: email, PasswordHash: digest}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueSession(user)
}

// Login validates credentials and issues a session token. A missing account
// and a wrong password fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", shared.ErrValidation)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrUserNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, shared.ErrInvalidCredentials
	}

	return s.issueSession(user)
}

func (s *Service) issueSession(user *User) (*Session, error) {
	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth: issue token: %w", err)
	}
	return &Session{Token: signed, UserID: user.ID}, nil
}

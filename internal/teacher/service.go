package teacher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mergington/school-backend/internal/auth"
)

// Service errors used to communicate business logic failures.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Service defines business logic related to teacher identities.
// Exists is the authorization primitive the announcement endpoints rely on.
type Service interface {
	Exists(ctx context.Context, username string) (bool, error)
	Login(ctx context.Context, username, password string) (*Teacher, error)
	Register(ctx context.Context, username, displayName, password string) (*Teacher, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new teacher Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Exists(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}
	return s.repo.Exists(ctx, username)
}

func (s *service) Login(ctx context.Context, username, password string) (*Teacher, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	t, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch teacher: %w", err)
	}

	if err := s.hasher.Compare(t.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return t, nil
}

func (s *service) Register(ctx context.Context, username, displayName, password string) (*Teacher, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	if len(password) < s.minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", s.minPasswordLength)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	t := &Teacher{
		Username:     username,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

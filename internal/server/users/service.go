package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
)

const (
	minNameLength     = 3
	minPasswordLength = 6
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// Register validates the signup input, hashes the password and stores a new
// user. Validation happens before any storage access. The returned user
// carries the stored hash for internal use only; callers must not expose it.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {

	if len(name) < minNameLength {
		return nil, fmt.Errorf("%w: name must be at least %d characters", common.ErrValidation, minNameLength)
	}
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: invalid email", common.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLength)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyExists) {
			return nil, common.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks the credentials against the stored hash and issues a signed
// bearer token. Unknown emails and wrong passwords are reported as distinct
// errors, matching the behavior this service replaces.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	if !validEmail(email) {
		return "", fmt.Errorf("%w: invalid email", common.ErrValidation)
	}
	if password == "" {
		return "", fmt.Errorf("%w: password required", common.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return "", common.ErrUserNotFound
		}
		return "", common.ErrInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrWrongPassword
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}

	return token, nil
}

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spendwise-app/spendwise/internal/common"
	"github.com/spendwise-app/spendwise/internal/model"
	"github.com/spendwise-app/spendwise/internal/service"
)

// MinPasswordLength is the minimum accepted password length at sign-up.
const MinPasswordLength = 6

// Service handles registration and login against the credential store.
type Service struct {
	store     service.Storage
	hasher    Hasher
	fallbacks []Hasher
}

// NewService creates an auth service. Fallback hashers are tried at login
// when the primary scheme rejects the stored hash; on a fallback match the
// credential is re-hashed with the primary scheme.
func NewService(store service.Storage, hasher Hasher, fallbacks ...Hasher) *Service {
	return &Service{
		store:     store,
		hasher:    hasher,
		fallbacks: fallbacks,
	}
}

// Register creates a new account. The email is trimmed; the password must
// meet the minimum length. A taken email surfaces as common.ErrDuplicate.
func (s *Service) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, MinPasswordLength)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, email, hash)
	if err != nil {
		return nil, err
	}

	slog.Info("registered user", "id", user.ID)
	return user, nil
}

// Login verifies credentials and returns the user. Unknown email and wrong
// password both surface as common.ErrAuth so the response does not reveal
// which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.store.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrAuth
	}

	if s.hasher.Verify(password, user.PasswordHash) {
		return user, nil
	}

	for _, fallback := range s.fallbacks {
		if !fallback.Verify(password, user.PasswordHash) {
			continue
		}
		s.rehash(ctx, user, password)
		return user, nil
	}

	return nil, common.ErrAuth
}

// rehash upgrades a credential verified by a fallback scheme to the primary
// one. Failure here must not fail the login.
func (s *Service) rehash(ctx context.Context, user *model.User, password string) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		slog.Warn("failed to re-hash credential", "user_id", user.ID, "error", err)
		return
	}
	if err := s.store.UpdateUserPasswordHash(ctx, user.ID, hash); err != nil {
		slog.Warn("failed to store upgraded hash", "user_id", user.ID, "error", err)
		return
	}
	user.PasswordHash = hash
	slog.Info("upgraded legacy password hash", "user_id", user.ID)
}

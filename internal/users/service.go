package users

import (
	"context"
	"errors"
	"strings"
)

var (
	errNotConfigured = errors.New("users service not configured")
	errIdentity      = errors.New("user id and email are required")
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Remember stores the identity from a completed sign-in and returns it as stored.
func (s *Service) Remember(ctx context.Context, user User) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errNotConfigured
	}
	user = User{
		ID:      strings.TrimSpace(user.ID),
		Email:   strings.ToLower(strings.TrimSpace(user.Email)),
		Name:    strings.TrimSpace(user.Name),
		Picture: strings.TrimSpace(user.Picture),
	}
	if user.ID == "" || user.Email == "" {
		return User{}, errIdentity
	}
	if err := s.Repo.Upsert(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Resolve returns the stored account for userID. When no row exists the
// identity carried by the token is used instead.
func (s *Service) Resolve(ctx context.Context, userID string, fromToken User) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errNotConfigured
	}
	user, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		fromToken.ID = userID
		return fromToken, nil
	}
	return user, err
}

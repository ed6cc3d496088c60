// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

// Package dashboard implements magic link redemption: token lookup, expiry
// validation and profile resolution.
package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/shulsign/onboarding/internal/apperr"
	"github.com/shulsign/onboarding/internal/models"
	"github.com/shulsign/onboarding/internal/repository"
)

// Store is the token and identity persistence the redeemer needs.
// *repository.Repository satisfies it.
type Store interface {
	GetMagicLinkByToken(ctx context.Context, token string) (*models.MagicLink, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

// Service is the token redeemer.
type Service struct {
	repo Store
	now  func() time.Time
}

// NewService creates a new dashboard service.
func NewService(repo Store) *Service {
	return &Service{repo: repo, now: time.Now}
}

// NewServiceWithClock creates a dashboard service with an injected clock,
// for expiry tests.
func NewServiceWithClock(repo Store, now func() time.Time) *Service {
	return &Service{repo: repo, now: now}
}

// Redeem resolves a magic link token to the profile it authenticates.
// Redemption never mutates the token record: a token stays valid for
// repeated use until it expires.
func (s *Service) Redeem(ctx context.Context, tokenValue string) (*models.User, error) {
	if tokenValue == "" {
		return nil, apperr.Validation("Token is required.")
	}

	link, err := s.repo.GetMagicLinkByToken(ctx, tokenValue)
	if err != nil {
		// Lookup failure and unknown token both read as an invalid
		// credential; the store error is not leaked.
		return nil, apperr.Auth("Invalid token.")
	}

	if link.Expired(s.now().UTC()) {
		return nil, apperr.Auth("Token expired. Please request a new link.")
	}

	if link.UserID == "" || link.Email == "" {
		return nil, apperr.Validation("Token missing user metadata.")
	}

	user, err := s.repo.GetUserByID(ctx, link.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Persistence("Could not load profile.", err)
	}

	// The identity was deleted or never created; recover with a mostly
	// empty profile seeded from the token.
	fresh := models.EmptyProfile(link.UserID, link.Email)
	if err := s.repo.CreateUser(ctx, fresh); err != nil {
		return nil, apperr.Persistence("Could not create profile.", err)
	}
	return fresh, nil
}

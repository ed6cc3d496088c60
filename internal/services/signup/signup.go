// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

// Package signup implements the magic link issuance flow: identity
// resolution, token generation and best-effort email delivery.
package signup

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shulsign/onboarding/internal/apperr"
	"github.com/shulsign/onboarding/internal/models"
	"github.com/shulsign/onboarding/internal/repository"
	"github.com/shulsign/onboarding/internal/services/token"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Mailer is the outbound mail transport. Delivery is best-effort: a send
// failure never fails the signup.
type Mailer interface {
	Configured() bool
	SendMagicLinks(ctx context.Context, to string, links []string) error
}

// Store is the identity and token persistence the issuer needs.
// *repository.Repository satisfies it.
type Store interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	CreateMagicLinks(ctx context.Context, links []models.MagicLink) error
}

// Request is the signup payload after JSON decoding.
type Request struct {
	Email    string
	Phone    string
	FullName string
	Company  string
	Website  string
	Services string
}

// Result is the signup outcome. Links and Info are only set when the email
// was not sent, so the caller still gets the magic links.
type Result struct {
	Message string   `json:"message"`
	Links   []string `json:"links,omitempty"`
	Info    string   `json:"info,omitempty"`
}

// Service is the token issuer.
type Service struct {
	repo    Store
	mailer  Mailer
	baseURL string
}

// NewService creates a new signup service.
func NewService(repo Store, mailer Mailer, baseURL string) *Service {
	return &Service{repo: repo, mailer: mailer, baseURL: baseURL}
}

// Signup validates the payload, resolves or creates the identity, persists
// two magic link tokens and attempts delivery by email.
func (s *Service) Signup(ctx context.Context, req Request) (*Result, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == "" {
		return nil, apperr.Validation("Email is required.")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperr.Validation("Enter a valid email address.")
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, apperr.Validation("Full name is required.")
	}

	userID, err := s.resolveIdentity(ctx, email, fullName, req)
	if err != nil {
		return nil, err
	}

	primary, err := token.New()
	if err != nil {
		return nil, apperr.Persistence("Could not create magic links.", err)
	}
	secondary, err := token.New()
	if err != nil {
		return nil, apperr.Persistence("Could not create magic links.", err)
	}

	links := []models.MagicLink{
		{Token: primary.Value, Purpose: token.PurposePrimary, Email: email, UserID: userID, ExpiresAt: primary.ExpiresAt},
		{Token: secondary.Value, Purpose: token.PurposeSecondary, Email: email, UserID: userID, ExpiresAt: secondary.ExpiresAt},
	}
	if err := s.repo.CreateMagicLinks(ctx, links); err != nil {
		return nil, apperr.Persistence("Could not create magic links.", err)
	}

	urls := []string{
		token.DashboardLink(s.baseURL, primary.Value),
		token.DashboardLink(s.baseURL, secondary.Value),
	}

	sent, reason := s.deliver(ctx, email, urls)
	if sent {
		return &Result{Message: "Signup complete. Check your email for magic links."}, nil
	}
	return &Result{
		Message: "Signup complete. Email not sent; use the links returned below.",
		Links:   urls,
		Info:    reason,
	}, nil
}

// resolveIdentity finds the identity row for email, creating one when
// absent. A lost race on the unique email constraint maps to ConflictError.
func (s *Service) resolveIdentity(ctx context.Context, email, fullName string, req Request) (string, error) {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", apperr.Persistence("Could not check user existence.", err)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Email:    email,
		FullName: &fullName,
		Phone:    optional(req.Phone),
		Q1:       optional(req.Company),
		Q2:       optional(req.Website),
		Q3:       optional(req.Services),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return "", apperr.Conflict("This email is already registered. Please use a different email or go to your dashboard.")
		}
		return "", apperr.Persistence("Could not create profile.", err)
	}
	return user.ID, nil
}

// deliver attempts the magic link email. Returns sent=false with a
// human-readable reason when SMTP is unconfigured or the send failed; the
// tokens are already persisted either way.
func (s *Service) deliver(ctx context.Context, email string, urls []string) (sent bool, reason string) {
	if !s.mailer.Configured() {
		return false, "SMTP configuration missing; magic links returned in response for debugging."
	}
	if err := s.mailer.SendMagicLinks(ctx, email, urls); err != nil {
		slog.Error("failed sending magic link email", "error", apperr.Delivery("Email send failed.", err))
		return false, "Email send failed."
	}
	return true, ""
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

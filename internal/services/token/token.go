// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

// Package token generates magic link tokens and builds dashboard links.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	// Bytes is the number of random bytes per token.
	Bytes = 32
	// Expiry is how long a magic link stays valid.
	Expiry = 72 * time.Hour

	// PurposePrimary tags the first link of a signup batch.
	PurposePrimary = "dashboard_primary"
	// PurposeSecondary tags the second link. Both links are interchangeable
	// credentials; the tag is a label only.
	PurposeSecondary = "dashboard_secondary"
)

// Token is a freshly generated, not yet persisted magic link credential.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// New generates a token: 32 bytes of cryptographically secure random data,
// URL-safe base64 without padding, expiring Expiry from now. Each call reads
// the clock independently.
func New() (Token, error) {
	buf := make([]byte, Bytes)
	if _, err := rand.Read(buf); err != nil {
		return Token{}, fmt.Errorf("generating random bytes: %w", err)
	}

	return Token{
		Value:     base64.RawURLEncoding.EncodeToString(buf),
		ExpiresAt: time.Now().UTC().Add(Expiry),
	}, nil
}

// DashboardLink builds the URL a magic link email points at, with the token
// embedded as a query parameter.
func DashboardLink(baseURL, tokenValue string) string {
	return fmt.Sprintf("%s/dashboard?token=%s", strings.TrimSuffix(baseURL, "/"), url.QueryEscape(tokenValue))
}

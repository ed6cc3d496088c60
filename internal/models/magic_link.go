// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package models

import "time"

// MagicLink is a token record: a durable, time-limited credential mapping an
// opaque token string to an identity. Tokens are write-once and stay valid
// for repeated use until they expire; there is no consumed state.
type MagicLink struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64     `db:"id" json:"id"`
	Token     string    `db:"token" json:"token"`
	Purpose   string    `db:"purpose" json:"purpose"`
	Email     string    `db:"email" json:"email"`
	UserID    string    `db:"user_id" json:"user_id"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Expired reports whether the link is past its expiry at the given instant.
func (m *MagicLink) Expired(now time.Time) bool {
	return m.ExpiresAt.Before(now)
}

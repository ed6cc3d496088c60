// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"github.com/shulsign/onboarding/internal/models"
)

// CreateMagicLinks inserts a batch of token records inside one transaction,
// all-or-nothing.
func (r *Repository) CreateMagicLinks(ctx context.Context, links []models.MagicLink) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapError(err)
	}

	for _, link := range links {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO magic_links (token, purpose, email, user_id, expires_at) VALUES (?, ?, ?, ?, ?)`,
			link.Token, link.Purpose, link.Email, link.UserID, link.ExpiresAt)
		if err != nil {
			_ = tx.Rollback()
			return wrapError(err)
		}
	}

	return wrapError(tx.Commit())
}

// GetMagicLinkByToken retrieves a token record by exact token string.
func (r *Repository) GetMagicLinkByToken(ctx context.Context, token string) (*models.MagicLink, error) {
	var link models.MagicLink
	err := r.db.GetContext(ctx, &link, `SELECT * FROM magic_links WHERE token = ?`, token)
	if err != nil {
		return nil, wrapError(err)
	}
	return &link, nil
}

// DeleteExpiredMagicLinks removes token records past their expiry. Redemption
// never consumes tokens, so this is the only cleanup the table gets.
func (r *Repository) DeleteExpiredMagicLinks(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM magic_links WHERE expires_at < ?`, time.Now().UTC())
	if err != nil {
		return 0, wrapError(err)
	}
	return res.RowsAffected()
}

// CountUserMagicLinks returns the number of token records for an identity.
func (r *Repository) CountUserMagicLinks(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM magic_links WHERE user_id = ?`, userID)
	if err != nil {
		return 0, wrapError(err)
	}
	return count, nil
}

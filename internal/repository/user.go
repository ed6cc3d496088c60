// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/shulsign/onboarding/internal/models"
)

// userUpdatableColumns are the profile columns the dashboard may patch.
// Anything outside this list is rejected before it reaches SQL.
var userUpdatableColumns = map[string]bool{
	"phone":       true,
	"full_name":   true,
	"q1":          true,
	"q2":          true,
	"q3":          true,
	"latitude":    true,
	"longitude":   true,
	"elevation":   true,
	"image1_path": true,
	"image2_path": true,
	"image3_path": true,
	"image4_path": true,
	"image5_path": true,
	"image6_path": true,
	"image7_path": true,
}

// UserColumnUpdatable reports whether the dashboard may patch the column.
func UserColumnUpdatable(column string) bool {
	return userUpdatableColumns[column]
}

// CreateUser inserts a new identity row. Returns ErrConflict when the email
// collides with an existing row.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, phone, full_name, q1, q2, q3, latitude, longitude, elevation,
		                    image1_path, image2_path, image3_path, image4_path, image5_path, image6_path, image7_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Phone, user.FullName, user.Q1, user.Q2, user.Q3,
		user.Latitude, user.Longitude, user.Elevation,
		user.Image1Path, user.Image2Path, user.Image3Path, user.Image4Path,
		user.Image5Path, user.Image6Path, user.Image7Path)
	return wrapError(err)
}

// GetUserByEmail retrieves an identity row by its unique email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = ?`, email)
	if err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// GetUserByID retrieves an identity row by ID.
func (r *Repository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = ?`, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// UpdateUserFields applies a partial update to a profile row and returns the
// updated row. Column names must already be whitelisted by the caller.
func (r *Repository) UpdateUserFields(ctx context.Context, id string, updates map[string]any) (*models.User, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	sets := make([]string, 0, len(updates))
	args := make([]any, 0, len(updates)+1)
	for column, value := range updates {
		sets = append(sets, fmt.Sprintf("%q = ?", column))
		args = append(args, value)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = ?`, strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, wrapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetUserByID(ctx, id)
}

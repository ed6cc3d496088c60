// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"fmt"
	"strings"
)

// CreateSynagogue inserts a bare synagogue row keyed by its admin and TV keys.
func (r *Repository) CreateSynagogue(ctx context.Context, adminKey, tvKey string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO synagogues (admin_key, tv_key) VALUES (?, ?)`, adminKey, tvKey)
	return wrapError(err)
}

// GetSynagogueByAdminKey returns the full synagogue row as a column→value
// map. The row is wide and partially schemaless from the caller's point of
// view, so a map keeps the admin console contract 1:1 with the columns.
func (r *Repository) GetSynagogueByAdminKey(ctx context.Context, adminKey string) (map[string]any, error) {
	row := r.db.QueryRowxContext(ctx, `SELECT * FROM synagogues WHERE admin_key = ?`, adminKey)

	result := map[string]any{}
	if err := row.MapScan(result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// GetSynagogueTVKey returns the tv_key used to folder uploaded images.
func (r *Repository) GetSynagogueTVKey(ctx context.Context, adminKey string) (string, error) {
	var tvKey string
	err := r.db.GetContext(ctx, &tvKey, `SELECT tv_key FROM synagogues WHERE admin_key = ?`, adminKey)
	if err != nil {
		return "", wrapError(err)
	}
	return tvKey, nil
}

// UpdateSynagogueFields applies a partial update to a synagogue row. Column
// names must already be whitelisted by the caller.
func (r *Repository) UpdateSynagogueFields(ctx context.Context, adminKey string, updates map[string]any) error {
	if len(updates) == 0 {
		return fmt.Errorf("no fields to update")
	}

	sets := make([]string, 0, len(updates))
	args := make([]any, 0, len(updates)+1)
	for column, value := range updates {
		sets = append(sets, fmt.Sprintf("%q = ?", column))
		args = append(args, value)
	}
	args = append(args, adminKey)

	query := fmt.Sprintf(`UPDATE synagogues SET %s WHERE admin_key = ?`, strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSynagogueImagePath returns the stored path of one image slot, or nil
// when the slot is empty.
func (r *Repository) GetSynagogueImagePath(ctx context.Context, adminKey, field string) (*string, error) {
	var path *string
	query := fmt.Sprintf(`SELECT %q FROM synagogues WHERE admin_key = ?`, field+"_path")
	err := r.db.GetContext(ctx, &path, query, adminKey)
	if err != nil {
		return nil, wrapError(err)
	}
	return path, nil
}

// SetSynagogueImagePath stores (or clears, with nil) the path of one image
// slot.
func (r *Repository) SetSynagogueImagePath(ctx context.Context, adminKey, field string, path *string) error {
	query := fmt.Sprintf(`UPDATE synagogues SET %q = ? WHERE admin_key = ?`, field+"_path")
	res, err := r.db.ExecContext(ctx, query, path, adminKey)
	if err != nil {
		return wrapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"github.com/shulsign/onboarding/internal/models"
)

// ListEmergencyCompanies returns all selectable emergency contact providers.
func (r *Repository) ListEmergencyCompanies(ctx context.Context) ([]models.EmergencyCompany, error) {
	companies := []models.EmergencyCompany{}
	err := r.db.SelectContext(ctx, &companies, `SELECT * FROM emergency_companies ORDER BY name`)
	if err != nil {
		return nil, wrapError(err)
	}
	return companies, nil
}

// AddEmergencyCompany inserts a new provider.
func (r *Repository) AddEmergencyCompany(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO emergency_companies (name) VALUES (?)`, name)
	return wrapError(err)
}

// ListLayouts returns the names of all available sign layouts.
func (r *Repository) ListLayouts(ctx context.Context) ([]string, error) {
	names := []string{}
	err := r.db.SelectContext(ctx, &names, `SELECT name FROM layouts ORDER BY name`)
	if err != nil {
		return nil, wrapError(err)
	}
	return names, nil
}

// AddLayout inserts a new layout name.
func (r *Repository) AddLayout(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO layouts (name) VALUES (?)`, name)
	return wrapError(err)
}

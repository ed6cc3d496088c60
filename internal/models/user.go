// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package models

import "time"

// User is the identity record behind a signup: the durable profile row of a
// registered synagogue contact. Optional columns are pointers so that JSON
// null round-trips the way the dashboard expects.
type User struct { //nolint:govet // fieldalignment: readability over optimization
	ID         string     `db:"id" json:"id"`
	Email      string     `db:"email" json:"email"`
	Phone      *string    `db:"phone" json:"phone"`
	FullName   *string    `db:"full_name" json:"full_name"`
	Q1         *string    `db:"q1" json:"q1"`
	Q2         *string    `db:"q2" json:"q2"`
	Q3         *string    `db:"q3" json:"q3"`
	Latitude   *float64   `db:"latitude" json:"latitude"`
	Longitude  *float64   `db:"longitude" json:"longitude"`
	Elevation  *float64   `db:"elevation" json:"elevation"`
	Image1Path *string    `db:"image1_path" json:"image1_path"`
	Image2Path *string    `db:"image2_path" json:"image2_path"`
	Image3Path *string    `db:"image3_path" json:"image3_path"`
	Image4Path *string    `db:"image4_path" json:"image4_path"`
	Image5Path *string    `db:"image5_path" json:"image5_path"`
	Image6Path *string    `db:"image6_path" json:"image6_path"`
	Image7Path *string    `db:"image7_path" json:"image7_path"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// EmptyProfile builds the mostly-empty profile row the dashboard creates
// when a valid token points at a missing identity: empty strings for the
// text fields and all seven image slots null.
func EmptyProfile(id, email string) *User {
	empty := ""
	return &User{
		ID:       id,
		Email:    email,
		Phone:    &empty,
		FullName: &empty,
		Q1:       &empty,
		Q2:       &empty,
		Q3:       &empty,
	}
}

// Package models defines server-side data models persisted in the database.
package models

import "time"

// Recipe is a stored recipe or tombstone. Rows are scoped by UserID.
type Recipe struct {
	UserID      string
	ID          string
	Title       string
	Ingredients string
	Steps       string
	ImageRef    string
	UpdatedAt   time.Time
	CreatedAt   time.Time
}

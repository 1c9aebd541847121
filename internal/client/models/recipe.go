// Package models defines the client-side recipe model.
package models

import (
	"fmt"
	"time"
)

// Recipe is a single diary entry as kept in the local cache and mirrored to
// the remote store.
type Recipe struct {
	ID          string
	Title       string
	Ingredients string
	Steps       string
	// ImageRef is an object storage key; empty when the recipe has no image.
	ImageRef  string
	UpdatedAt time.Time
	CreatedAt time.Time
}

// Equal reports whether r and o describe the same recipe content.
// UpdatedAt is deliberately not compared: two replicas holding the same data
// with different modification stamps are considered equal.
func (r *Recipe) Equal(o *Recipe) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.ID == o.ID &&
		r.Title == o.Title &&
		r.Ingredients == o.Ingredients &&
		r.Steps == o.Steps &&
		r.ImageRef == o.ImageRef &&
		r.CreatedAt.Equal(o.CreatedAt)
}

func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func (r *Recipe) String() string {
	return fmt.Sprintf("Recipe{id=%s title=%q updated_at=%s}", r.ID, r.Title, FormatTimestamp(r.UpdatedAt))
}

// RecipeUpdate carries the replaceable fields of a recipe. A nil UpdatedAt
// asks the store to stamp the current time.
type RecipeUpdate struct {
	Title       string
	Ingredients string
	Steps       string
	ImageRef    string
	UpdatedAt   *time.Time
}

// AsUpdate returns the editable fields of r. When keepTimestamp is set the
// update carries r.UpdatedAt explicitly.
func (r *Recipe) AsUpdate(keepTimestamp bool) RecipeUpdate {
	u := RecipeUpdate{
		Title:       r.Title,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		ImageRef:    r.ImageRef,
	}
	if keepTimestamp {
		ts := r.UpdatedAt
		u.UpdatedAt = &ts
	}
	return u
}

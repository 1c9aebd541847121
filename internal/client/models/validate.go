package models

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxTitleLength = 200
	MaxTextLength  = 20000
)

// MsgTitleRequired is shown when a recipe is saved without a title.
const MsgTitleRequired = "You must enter a title."

// Validate checks the recipe before it is written to any store.
func (r *Recipe) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Title,
			validation.Required.Error(MsgTitleRequired),
			validation.RuneLength(0, MaxTitleLength),
		),
		validation.Field(&r.Ingredients, validation.RuneLength(0, MaxTextLength)),
		validation.Field(&r.Steps, validation.RuneLength(0, MaxTextLength)),
	)
}

// ValidationMessage returns a single user-facing line for err. Field errors
// from Validate are reported by their message alone.
func ValidationMessage(err error) string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == "Title" {
			return errs[k].Error()
		}
	}
	return fmt.Sprintf("%s: %s", keys[0], errs[keys[0]].Error())
}

package proto

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

// Wire field names of a recipe Struct.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldIngredients = "ingredients"
	FieldSteps       = "steps"
	FieldImageRef    = "image_ref"
	FieldUpdatedAt   = "updated_at"
	FieldCreatedAt   = "created_at"

	FieldKey = "key"
	FieldURL = "url"
)

var ErrMalformedRecipe = errors.New("malformed recipe payload")

// Recipe is the wire form of a record. Timestamps are Unix milliseconds;
// they travel as Struct number values, which hold integers exactly up to 2^53.
type Recipe struct {
	ID          string
	Title       string
	Ingredients string
	Steps       string
	ImageRef    string
	UpdatedAt   int64
	CreatedAt   int64
}

func (r *Recipe) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldID:          structpb.NewStringValue(r.ID),
		FieldTitle:       structpb.NewStringValue(r.Title),
		FieldIngredients: structpb.NewStringValue(r.Ingredients),
		FieldSteps:       structpb.NewStringValue(r.Steps),
		FieldImageRef:    structpb.NewStringValue(r.ImageRef),
		FieldUpdatedAt:   structpb.NewNumberValue(float64(r.UpdatedAt)),
		FieldCreatedAt:   structpb.NewNumberValue(float64(r.CreatedAt)),
	}}
}

// RecipeFromStruct decodes a recipe. The id is mandatory; missing text
// fields decode as empty strings and missing timestamps as 0.
func RecipeFromStruct(s *structpb.Struct) (*Recipe, error) {
	if s == nil {
		return nil, ErrMalformedRecipe
	}
	f := s.GetFields()

	var r Recipe
	var err error
	if r.ID, err = stringField(f, FieldID); err != nil {
		return nil, err
	}
	if r.ID == "" {
		return nil, fmt.Errorf("%w: empty %s", ErrMalformedRecipe, FieldID)
	}
	if r.Title, err = stringField(f, FieldTitle); err != nil {
		return nil, err
	}
	if r.Ingredients, err = stringField(f, FieldIngredients); err != nil {
		return nil, err
	}
	if r.Steps, err = stringField(f, FieldSteps); err != nil {
		return nil, err
	}
	if r.ImageRef, err = stringField(f, FieldImageRef); err != nil {
		return nil, err
	}
	if r.UpdatedAt, err = millisField(f, FieldUpdatedAt); err != nil {
		return nil, err
	}
	if r.CreatedAt, err = millisField(f, FieldCreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func stringField(f map[string]*structpb.Value, name string) (string, error) {
	v, ok := f[name]
	if !ok || isNull(v) {
		return "", nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrMalformedRecipe, name)
	}
	return s.StringValue, nil
}

func millisField(f map[string]*structpb.Value, name string) (int64, error) {
	v, ok := f[name]
	if !ok || isNull(v) {
		return 0, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
		return 0, fmt.Errorf("%w: %s is not an integer", ErrMalformedRecipe, name)
	}
	return int64(n.NumberValue), nil
}

func isNull(v *structpb.Value) bool {
	_, null := v.GetKind().(*structpb.Value_NullValue)
	return null
}

func RecipesToList(rs []*Recipe) *structpb.ListValue {
	l := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(rs))}
	for _, r := range rs {
		l.Values = append(l.Values, structpb.NewStructValue(r.ToStruct()))
	}
	return l
}

func RecipesFromList(l *structpb.ListValue) ([]*Recipe, error) {
	out := make([]*Recipe, 0, len(l.GetValues()))
	for i, v := range l.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is not an object", ErrMalformedRecipe, i)
		}
		r, err := RecipeFromStruct(s.StructValue)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// ImageUpload is a presigned upload target for a recipe image.
type ImageUpload struct {
	Key string
	URL string
}

func (u *ImageUpload) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldKey: structpb.NewStringValue(u.Key),
		FieldURL: structpb.NewStringValue(u.URL),
	}}
}

func ImageUploadFromStruct(s *structpb.Struct) (*ImageUpload, error) {
	f := s.GetFields()
	key, err := stringField(f, FieldKey)
	if err != nil {
		return nil, err
	}
	url, err := stringField(f, FieldURL)
	if err != nil {
		return nil, err
	}
	return &ImageUpload{Key: key, URL: url}, nil
}

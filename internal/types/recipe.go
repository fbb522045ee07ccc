package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	DefaultDietaryRestrictions = "none"
	DefaultCuisineType         = "any"
)

// ErrNullField is returned when a request field is explicitly null
var ErrNullField = errors.New("must be a string, not null")

// RecipeRequest represents the request body for generating a recipe
type RecipeRequest struct {
	Ingredients         string `json:"ingredients"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	CuisineType         string `json:"cuisine_type"`
}

// NewRecipeRequest returns a request with the optional fields set to their
// defaults. Decoding a body into it only overwrites the keys that are present.
func NewRecipeRequest() RecipeRequest {
	return RecipeRequest{
		DietaryRestrictions: DefaultDietaryRestrictions,
		CuisineType:         DefaultCuisineType,
	}
}

// UnmarshalJSON sets only the keys present in data and rejects null values,
// so an absent key keeps its default while a null one is a schema error
func (r *RecipeRequest) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("request body %w", ErrNullField)
	}

	var raw struct {
		Ingredients         json.RawMessage `json:"ingredients"`
		DietaryRestrictions json.RawMessage `json:"dietary_restrictions"`
		CuisineType         json.RawMessage `json:"cuisine_type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		name string
		raw  json.RawMessage
		dst  *string
	}{
		{"ingredients", raw.Ingredients, &r.Ingredients},
		{"dietary_restrictions", raw.DietaryRestrictions, &r.DietaryRestrictions},
		{"cuisine_type", raw.CuisineType, &r.CuisineType},
	}
	for _, f := range fields {
		if f.raw == nil {
			continue
		}
		if bytes.Equal(f.raw, []byte("null")) {
			return fmt.Errorf("%s %w", f.name, ErrNullField)
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

// RecipeResponse wraps the generated markdown recipe
type RecipeResponse struct {
	Recipe string `json:"recipe"`
}

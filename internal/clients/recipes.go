package clients

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Recipe is one record of the recipe collection. Optional fields are nil
// when absent from the wire.
type Recipe struct {
	Cuisine       string  `json:"cuisine"`
	Name          string  `json:"name"`
	UUID          string  `json:"uuid"`
	PhotoURLLarge *string `json:"photo_url_large,omitempty"`
	PhotoURLSmall *string `json:"photo_url_small,omitempty"`
	SourceURL     *string `json:"source_url,omitempty"`
	YouTubeURL    *string `json:"youtube_url,omitempty"`
}

// recipeWire mirrors the wire record. Required fields are pointers so that an
// absent or null key is distinguishable from an empty string.
type recipeWire struct {
	Cuisine       *string `json:"cuisine" validate:"required"`
	Name          *string `json:"name" validate:"required"`
	UUID          *string `json:"uuid" validate:"required"`
	PhotoURLLarge *string `json:"photo_url_large"`
	PhotoURLSmall *string `json:"photo_url_small"`
	SourceURL     *string `json:"source_url"`
	YouTubeURL    *string `json:"youtube_url"`
}

// UnmarshalJSON decodes a wire record and rejects it when cuisine, name or
// uuid is missing.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var w recipeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("recipe: %w", err)
	}
	*r = Recipe{
		Cuisine:       *w.Cuisine,
		Name:          *w.Name,
		UUID:          *w.UUID,
		PhotoURLLarge: w.PhotoURLLarge,
		PhotoURLSmall: w.PhotoURLSmall,
		SourceURL:     w.SourceURL,
		YouTubeURL:    w.YouTubeURL,
	}
	return nil
}

// Thumbnail returns the small photo URL, or "" when the recipe has none.
func (r Recipe) Thumbnail() string {
	if r.PhotoURLSmall == nil {
		return ""
	}
	return *r.PhotoURLSmall
}

// ParsedUUID parses the recipe identifier.
func (r Recipe) ParsedUUID() (uuid.UUID, error) {
	return uuid.Parse(r.UUID)
}

// RecipeCollection is the response envelope of every recipe endpoint.
// Decoding is all or nothing: one invalid record fails the collection.
type RecipeCollection struct {
	Recipes []Recipe `json:"recipes"`
}

type recipeCollectionWire struct {
	Recipes *[]Recipe `json:"recipes" validate:"required"`
}

func (c *RecipeCollection) UnmarshalJSON(data []byte) error {
	var w recipeCollectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("recipe collection: %w", err)
	}
	c.Recipes = *w.Recipes
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// PlaceholderImageURL is substituted for the image field when a recipe is
// created without one.
const PlaceholderImageURL = "https://theme-assets.getbento.com/sensei/3d11b60.sensei/assets/images/catering-item-placeholder-704x520.png"

// CategoryAll is the sentinel category value meaning "no category filter".
const CategoryAll = "All"

// Recipe is a single recipe record.
//
// Ownership is attributed through two fields: OwnerID (primary) and
// OwnerEmail (legacy). Records written before owner IDs existed carry only
// the email, so scoped reads match on either field. Both may be empty for
// unscoped legacy records, which remain visible to everyone.
type Recipe struct {
	// ID is the unique identifier of the recipe. Stored natively as a UUID,
	// serialized to clients as its canonical string form.
	ID uuid.UUID `json:"id"`

	// Name is the only mandatory field at creation time.
	Name string `json:"name"`

	Description string `json:"description"`
	Category    string `json:"category"`
	Temperature string `json:"temperature"`

	// PrepTime and CookTime are durations in minutes. They are nullable:
	// a recipe created without them serializes them as null, not zero.
	PrepTime *int `json:"prepTime"`
	CookTime *int `json:"cookTime"`

	// Image is the recipe picture URL; defaults to [PlaceholderImageURL].
	Image string `json:"image"`

	// Link is an optional external reference URL.
	Link string `json:"link"`

	// OwnerID references the creating user. Nil for unscoped legacy records.
	OwnerID *uuid.UUID `json:"ownerId"`

	// OwnerEmail is the legacy attribution field kept for records created
	// before owner IDs existed.
	OwnerEmail *string `json:"ownerEmail"`

	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeUpdate is a partial recipe patch. Nil fields are left untouched.
//
// It deliberately has no identity fields: the id and owner attribution of a
// recipe cannot be rewritten through the patch path.
type RecipeUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Temperature *string `json:"temperature"`
	PrepTime    *int    `json:"prepTime"`
	CookTime    *int    `json:"cookTime"`
	Image       *string `json:"image"`
	Link        *string `json:"link"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (u RecipeUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Category == nil &&
		u.Temperature == nil && u.PrepTime == nil && u.CookTime == nil &&
		u.Image == nil && u.Link == nil
}

// RecipeFilter describes the optional list filters. All present filters
// compose conjunctively with the ownership scope applied by the store.
type RecipeFilter struct {
	// Search is a case-insensitive substring matched against name,
	// description, category and temperature.
	Search string

	// Category is an exact category match. Empty or [CategoryAll] disables it.
	Category string
}

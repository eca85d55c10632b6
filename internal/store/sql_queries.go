package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/recipe-manager/models"
	"github.com/google/uuid"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, name, email, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT id, name, email, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password_hash, created_at, updated_at
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT id, name, email, password_hash, created_at, updated_at
    FROM users
    ORDER BY created_at;`

	updateUser = `UPDATE users
    SET name = $2, email = $3, password_hash = $4, updated_at = NOW()
    WHERE id = $1
    RETURNING id, name, email, password_hash, created_at, updated_at;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createRecipe = `INSERT INTO recipes (name, description, category, temperature, prep_time, cook_time, image, link, owner_id, owner_email)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING id, name, description, category, temperature, prep_time, cook_time, image, link, owner_id, owner_email, created_at, last_modified;`

	findRecipeByID = `SELECT id, name, description, category, temperature, prep_time, cook_time, image, link, owner_id, owner_email, created_at, last_modified
    FROM recipes
    WHERE id = $1;`

	deleteRecipe = `DELETE FROM recipes WHERE id = $1;`
)

// recipeColumns is the canonical column order shared by the squirrel-built
// queries and the row scanners.
var recipeColumns = []string{
	"id", "name", "description", "category", "temperature",
	"prep_time", "cook_time", "image", "link",
	"owner_id", "owner_email", "created_at", "last_modified",
}

// buildListQuery assembles the scoped listing query.
//
// With an owner identity present the result is restricted to recipes
// attributed to that identity, matched against EITHER the primary owner_id
// column OR the legacy owner_email column. The OR across both attribution
// fields is a deliberate migration-compatibility rule: records written
// before owner IDs existed carry only the email.
//
// Search and category filters compose conjunctively on top of the ownership
// scope. The [models.CategoryAll] sentinel disables the category filter.
func buildListQuery(filter models.RecipeFilter, owner *models.Identity) (string, []any, error) {
	builder := sq.Select(recipeColumns...).
		From("recipes").
		PlaceholderFormat(sq.Dollar)

	if owner != nil {
		builder = builder.Where(sq.Or{
			sq.Eq{"owner_id": owner.UserID},
			sq.Eq{"owner_email": owner.Email},
		})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"category": pattern},
			sq.ILike{"temperature": pattern},
		})
	}

	if filter.Category != "" && filter.Category != models.CategoryAll {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}

	return builder.OrderBy("created_at").ToSql()
}

// buildUpdateQuery assembles the partial UPDATE for a recipe patch.
//
// Only non-nil patch fields produce SET clauses. last_modified is always
// refreshed, even for an empty patch, and the identity columns (id,
// owner_id, owner_email) are never touched: [models.RecipeUpdate] cannot
// express them.
func buildUpdateQuery(id uuid.UUID, update models.RecipeUpdate) (string, []any, error) {
	builder := sq.Update("recipes").
		PlaceholderFormat(sq.Dollar).
		Set("last_modified", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Temperature != nil {
		builder = builder.Set("temperature", *update.Temperature)
	}
	if update.PrepTime != nil {
		builder = builder.Set("prep_time", *update.PrepTime)
	}
	if update.CookTime != nil {
		builder = builder.Set("cook_time", *update.CookTime)
	}
	if update.Image != nil {
		builder = builder.Set("image", *update.Image)
	}
	if update.Link != nil {
		builder = builder.Set("link", *update.Link)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix(fmt.Sprintf("RETURNING %s", strings.Join(recipeColumns, ", "))).
		ToSql()
}

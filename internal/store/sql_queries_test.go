// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/recipe-manager/models"
)

func Test_buildListQuery_Unscoped(t *testing.T) {
	query, args, err := buildListQuery(models.RecipeFilter{}, nil)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from recipes")
	require.Contains(t, q, "order by created_at")
	assert.NotContains(t, q, "where")
	assert.Empty(t, args)
}

func Test_buildListQuery_OwnerMatchesEitherAttributionColumn(t *testing.T) {
	owner := models.Identity{UserID: uuid.New(), Email: "cook@example.com"}

	query, args, err := buildListQuery(models.RecipeFilter{}, &owner)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "owner_id = $1 or owner_email = $2")

	require.Len(t, args, 2)
	assert.Equal(t, owner.UserID, args[0])
	assert.Equal(t, owner.Email, args[1])
}

func Test_buildListQuery_SearchCoversAllTextColumns(t *testing.T) {
	query, args, err := buildListQuery(models.RecipeFilter{Search: "smoke"}, nil)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "name ilike")
	require.Contains(t, q, "description ilike")
	require.Contains(t, q, "category ilike")
	require.Contains(t, q, "temperature ilike")

	require.Len(t, args, 4)
	for _, arg := range args {
		assert.Equal(t, "%smoke%", arg)
	}
}

func Test_buildListQuery_CategoryFilter(t *testing.T) {
	query, args, err := buildListQuery(models.RecipeFilter{Category: "Pork"}, nil)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "category = $1")
	require.Equal(t, []any{"Pork"}, args)
}

func Test_buildListQuery_CategoryAllIsNoFilter(t *testing.T) {
	query, args, err := buildListQuery(models.RecipeFilter{Category: models.CategoryAll}, nil)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.NotContains(t, q, "category =")
	assert.Empty(t, args)
}

func Test_buildListQuery_FiltersCompose(t *testing.T) {
	owner := models.Identity{UserID: uuid.New(), Email: "cook@example.com"}
	filter := models.RecipeFilter{Search: "rib", Category: "Pork"}

	query, args, err := buildListQuery(filter, &owner)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "owner_id")
	require.Contains(t, q, "ilike")
	require.Contains(t, q, "category = $7")

	// 2 ownership + 4 search + 1 category
	require.Len(t, args, 7)
}

func Test_buildUpdateQuery_OnlySetFieldsPatched(t *testing.T) {
	id := uuid.New()
	name := "Renamed"
	cookTime := 90

	query, args, err := buildUpdateQuery(id, models.RecipeUpdate{Name: &name, CookTime: &cookTime})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update recipes")
	require.Contains(t, q, "name = ")
	require.Contains(t, q, "cook_time = ")
	require.Contains(t, q, "last_modified = now()")
	require.Contains(t, q, "returning")
	assert.NotContains(t, q, "description =")
	assert.NotContains(t, q, "owner_id =")
	assert.NotContains(t, q, "owner_email =")

	// name, cook_time, id
	require.Len(t, args, 3)
}

func Test_buildUpdateQuery_EmptyPatchStillTouchesLastModified(t *testing.T) {
	id := uuid.New()

	query, args, err := buildUpdateQuery(id, models.RecipeUpdate{})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "last_modified = now()")
	require.Contains(t, q, "where id = $1")
	require.Len(t, args, 1)
	assert.Equal(t, id, args[0])
}

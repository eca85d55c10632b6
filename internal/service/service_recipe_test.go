// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/recipe-manager/internal/logger"
	"github.com/MKhiriev/recipe-manager/internal/mock"
	"github.com/MKhiriev/recipe-manager/internal/store"
	"github.com/MKhiriev/recipe-manager/models"
)

func newTestRecipeSvc(t *testing.T, ctrl *gomock.Controller) (RecipeService, *mock.MockRecipeRepository) {
	t.Helper()
	mockRecipes := mock.NewMockRecipeRepository(ctrl)
	svc := NewRecipeService(mockRecipes, logger.NewLogger("test"))
	return svc, mockRecipes
}

func TestRecipeService_CreateRecipe_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecipes := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	owner := models.Identity{UserID: uuid.New(), Email: "cook@example.com"}

	mockRecipes.EXPECT().CreateRecipe(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Recipe) (models.Recipe, error) {
			assert.Equal(t, models.PlaceholderImageURL, r.Image, "missing image falls back to the placeholder")
			assert.Empty(t, r.Description)
			assert.Empty(t, r.Temperature)
			assert.Nil(t, r.PrepTime)
			assert.Nil(t, r.CookTime)
			require.NotNil(t, r.OwnerID)
			assert.Equal(t, owner.UserID, *r.OwnerID)
			require.NotNil(t, r.OwnerEmail)
			assert.Equal(t, owner.Email, *r.OwnerEmail)
			r.ID = uuid.New()
			return r, nil
		},
	)

	created, err := svc.CreateRecipe(ctx, models.Recipe{Name: "Pulled Pork"}, owner)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

// Client-supplied attribution must be discarded: the stored owner is always
// the authenticated caller, whatever the request body claimed.
func TestRecipeService_CreateRecipe_OwnerStampedFromCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecipes := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	owner := models.Identity{UserID: uuid.New(), Email: "cook@example.com"}
	forgedID := uuid.New()
	forgedEmail := "somebody-else@example.com"

	mockRecipes.EXPECT().CreateRecipe(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Recipe) (models.Recipe, error) {
			assert.Equal(t, owner.UserID, *r.OwnerID)
			assert.Equal(t, owner.Email, *r.OwnerEmail)
			assert.Equal(t, uuid.Nil, r.ID)
			return r, nil
		},
	)

	_, err := svc.CreateRecipe(ctx, models.Recipe{
		Name:       "Brisket",
		ID:         uuid.New(),
		OwnerID:    &forgedID,
		OwnerEmail: &forgedEmail,
	}, owner)
	require.NoError(t, err)
}

func TestRecipeService_CreateRecipe_NameRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRecipeSvc(t, ctrl)

	_, err := svc.CreateRecipe(context.Background(), models.Recipe{}, models.Identity{UserID: uuid.New()})
	require.ErrorIs(t, err, ErrRecipeNameRequired)
}

func TestRecipeService_CreateRecipe_KeepsProvidedImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecipes := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	mockRecipes.EXPECT().CreateRecipe(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Recipe) (models.Recipe, error) {
			assert.Equal(t, "https://example.com/ribs.jpg", r.Image)
			return r, nil
		},
	)

	_, err := svc.CreateRecipe(ctx, models.Recipe{
		Name:  "Ribs",
		Image: "https://example.com/ribs.jpg",
	}, models.Identity{UserID: uuid.New()})
	require.NoError(t, err)
}

func TestRecipeService_ListRecipes_PassesScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecipes := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	caller := models.Identity{UserID: uuid.New(), Email: "cook@example.com"}
	filter := models.RecipeFilter{Search: "rib", Category: "Pork"}

	mockRecipes.EXPECT().ListRecipes(ctx, filter, &caller).Return([]models.Recipe{}, nil)
	_, err := svc.ListRecipes(ctx, filter, &caller)
	require.NoError(t, err)

	mockRecipes.EXPECT().ListRecipes(ctx, filter, nil).Return([]models.Recipe{}, nil)
	_, err = svc.ListRecipes(ctx, filter, nil)
	require.NoError(t, err)
}

func TestRecipeService_GetRecipe_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRecipeSvc(t, ctrl)

	_, err := svc.GetRecipe(context.Background(), "definitely-not-a-uuid")
	require.ErrorIs(t, err, ErrInvalidRecipeID)
}

func TestRecipeService_UpdateRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestRecipeSvc(t, ctrl)

		_, err := svc.UpdateRecipe(ctx, "nope", models.RecipeUpdate{})
		require.ErrorIs(t, err, ErrInvalidRecipeID)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRecipes := newTestRecipeSvc(t, ctrl)
		id := uuid.New()

		mockRecipes.EXPECT().UpdateRecipe(ctx, id, gomock.Any()).
			Return(models.Recipe{}, store.ErrRecipeNotFound)

		_, err := svc.UpdateRecipe(ctx, id.String(), models.RecipeUpdate{})
		require.ErrorIs(t, err, store.ErrRecipeNotFound)
	})

	t.Run("patch forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRecipes := newTestRecipeSvc(t, ctrl)
		id := uuid.New()
		name := "Renamed"
		patch := models.RecipeUpdate{Name: &name}

		mockRecipes.EXPECT().UpdateRecipe(ctx, id, patch).
			Return(models.Recipe{ID: id, Name: name}, nil)

		updated, err := svc.UpdateRecipe(ctx, id.String(), patch)
		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
	})
}

func TestRecipeService_DeleteRecipe_ThreeWay(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestRecipeSvc(t, ctrl)

		err := svc.DeleteRecipe(ctx, "nope")
		require.ErrorIs(t, err, ErrInvalidRecipeID)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRecipes := newTestRecipeSvc(t, ctrl)
		id := uuid.New()

		mockRecipes.EXPECT().DeleteRecipe(ctx, id).Return(store.ErrRecipeNotFound)

		err := svc.DeleteRecipe(ctx, id.String())
		require.ErrorIs(t, err, store.ErrRecipeNotFound)
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRecipes := newTestRecipeSvc(t, ctrl)
		id := uuid.New()

		mockRecipes.EXPECT().DeleteRecipe(ctx, id).Return(nil)

		require.NoError(t, svc.DeleteRecipe(ctx, id.String()))
	})
}

package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/MKhiriev/recipe-manager/models"
)

func TestGetIdentityFromContext(t *testing.T) {
	identity := models.Identity{UserID: uuid.New(), Email: "cook@example.com"}
	ctx := context.WithValue(context.Background(), IdentityCtxKey, identity)

	got, ok := GetIdentityFromContext(ctx)
	if !ok {
		t.Fatal("expected identity to be present")
	}
	if got != identity {
		t.Errorf("expected %v, got %v", identity, got)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	if _, ok := GetIdentityFromContext(context.Background()); ok {
		t.Error("expected ok == false for an empty context")
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-an-identity")

	if _, ok := GetIdentityFromContext(ctx); ok {
		t.Error("expected ok == false for a mistyped value")
	}
}

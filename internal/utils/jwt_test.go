package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/recipe-manager/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	identity := models.Identity{UserID: uuid.New(), Email: "cook@example.com"}
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, identity, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*models.Claims)
	if !ok {
		t.Fatal("could not cast claims to models.Claims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != identity.UserID.String() {
		t.Errorf("expected subject %s, got %s", identity.UserID, claims.Subject)
	}
	if claims.Email != identity.Email {
		t.Errorf("expected email claim %s, got %s", identity.Email, claims.Email)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	validIdentity := models.Identity{UserID: uuid.New()}

	tests := []struct {
		name     string
		issuer   string
		identity models.Identity
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", validIdentity, time.Hour, "key"},
		{"zero duration", "iss", validIdentity, 0, "key"},
		{"empty key", "iss", validIdentity, time.Hour, ""},
		{"nil user id", "iss", models.Identity{}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.identity, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	identity := models.Identity{UserID: uuid.New(), Email: "cook@example.com"}
	key := "secret-key"
	duration := time.Minute * 5

	genToken, err := GenerateJWTToken(issuer, identity, duration, key)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Identity.UserID != identity.UserID {
		t.Errorf("expected userID %s, got %s", identity.UserID, parsedToken.Identity.UserID)
	}
	if parsedToken.Identity.Email != identity.Email {
		t.Errorf("expected email %s, got %s", identity.Email, parsedToken.Identity.Email)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	identity := models.Identity{UserID: uuid.New()}

	genToken, _ := GenerateJWTToken(issuer, identity, time.Hour, "correct-key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", issuer); err == nil {
		t.Error("expected validation error for a token signed with another key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	identity := models.Identity{UserID: uuid.New()}
	key := "secret-key"

	genToken, _ := GenerateJWTToken("issuer-a", identity, time.Hour, key)

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, key, "issuer-b"); err == nil {
		t.Error("expected validation error for a token from another issuer")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	identity := models.Identity{UserID: uuid.New()}
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, identity, -time.Minute, key)

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer); err == nil {
		t.Error("expected validation error for an expired token")
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not-a-jwt-at-all", "key", "iss"); err == nil {
		t.Error("expected error for a malformed token string")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid header", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token", "Bearer ", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"empty header", "", "", true},
		{"extra parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected token %q, got %q", tt.want, got)
			}
		})
	}
}

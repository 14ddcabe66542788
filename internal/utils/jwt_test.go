package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testPeer = "http://10.0.0.2:8080"

func TestGeneratePeerToken_Success(t *testing.T) {
	issuer := "test-issuer"
	duration := time.Hour
	key := "secret-key"

	token, err := GeneratePeerToken(issuer, testPeer, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Peer != testPeer {
		t.Errorf("expected peer %s, got %s", testPeer, token.Peer)
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != testPeer {
		t.Errorf("expected subject %s, got %s", testPeer, claims.Subject)
	}
}

func TestGeneratePeerToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		peer     string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testPeer, time.Hour, "key"},
		{"empty peer", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", testPeer, 0, "key"},
		{"empty key", "iss", testPeer, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeneratePeerToken(tt.issuer, tt.peer, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidatePeerToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, _ := GeneratePeerToken(issuer, testPeer, 5*time.Minute, key)

	parsedToken, err := ValidatePeerToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Peer != testPeer {
		t.Errorf("expected peer %s, got %s", testPeer, parsedToken.Peer)
	}
	if parsedToken.String() != genToken.SignedString {
		t.Error("expected String() to return the signed token")
	}
}

func TestValidatePeerToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"

	genToken, _ := GeneratePeerToken(issuer, testPeer, time.Hour, "correct-key")

	_, err := ValidatePeerToken(genToken.SignedString, "wrong-key", issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidatePeerToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	// Token that expired 1 second ago
	genToken, _ := GeneratePeerToken(issuer, testPeer, -time.Second, key)

	_, err := ValidatePeerToken(genToken.SignedString, key, issuer)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidatePeerToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GeneratePeerToken("real-issuer", testPeer, time.Hour, key)

	_, err := ValidatePeerToken(genToken.SignedString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidatePeerToken_Malformed(t *testing.T) {
	_, err := ValidatePeerToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"empty", "", "", true},
		{"no token", "Bearer ", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("kiosk-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Subject != "kiosk-1" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "kiosk-1")
	}
}

func TestJWTManager_Generate_RequiresSubject(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	if _, err := m.Generate(""); !errors.Is(err, ErrMissingSubject) {
		t.Errorf("Generate error = %v, want ErrMissingSubject", err)
	}
}

func TestJWTManager_Validate_Rejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	good, err := m.Generate("kiosk-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	expired := NewJWTManager("test-secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Generate("kiosk-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "kiosk-1"},
	})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: mustGenerate(t, NewJWTManager("other-secret", time.Hour))},
		{name: "expired", token: expiredToken},
		{name: "tampered", token: good[:len(good)-2] + flip(good[len(good)-2:])},
		{name: "unsigned", token: noneToken},
		{name: "garbage", token: "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Validate(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Validate error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func mustGenerate(t *testing.T, m *JWTManager) string {
	t.Helper()
	token, err := m.Generate("kiosk-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return token
}

// flip changes every character of s to a different base64url character.
func flip(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'A' {
			return 'B'
		}
		return 'A'
	}, s)
}

package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	now := time.Now()
	token, err := IssueSessionToken("4b7c1f0e-sess", "test-secret", now, time.Hour)
	if err != nil {
		t.Fatalf("IssueSessionToken() unexpected error: %v", err)
	}

	claims, err := ParseSessionToken(token, "test-secret", now)
	if err != nil {
		t.Fatalf("ParseSessionToken() unexpected error: %v", err)
	}
	if claims.SessionID != "4b7c1f0e-sess" {
		t.Errorf("ParseSessionToken() session = %q, want %q", claims.SessionID, "4b7c1f0e-sess")
	}
	if got := claims.ExpiresAt.Time; got.Unix() != now.Add(time.Hour).Unix() {
		t.Errorf("ParseSessionToken() expires = %v, want %v", got, now.Add(time.Hour))
	}
}

func TestParseSessionTokenUsesGivenTime(t *testing.T) {
	issued := time.Now()
	token, err := IssueSessionToken("sid", "test-secret", issued, time.Hour)
	if err != nil {
		t.Fatalf("IssueSessionToken() unexpected error: %v", err)
	}

	if _, err := ParseSessionToken(token, "test-secret", issued.Add(59*time.Minute)); err != nil {
		t.Errorf("ParseSessionToken() before expiry error = %v, want nil", err)
	}
	if _, err := ParseSessionToken(token, "test-secret", issued.Add(61*time.Minute)); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseSessionToken() after expiry error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestIssueSessionTokenEmptyID(t *testing.T) {
	_, err := IssueSessionToken("", "test-secret", time.Now(), time.Hour)
	if !errors.Is(err, ErrEmptySessionID) {
		t.Errorf("IssueSessionToken() error = %v, want %v", err, ErrEmptySessionID)
	}
}

func TestParseSessionTokenRejects(t *testing.T) {
	signed := func(claims SessionClaims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("SignedString() unexpected error: %v", err)
		}
		return s
	}
	valid := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
	}

	wrongIssuer := valid()
	wrongIssuer.Issuer = "someone-else"
	wrongAudience := valid()
	wrongAudience.Audience = jwt.ClaimStrings{"other"}
	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	noExpiry := valid()
	noExpiry.ExpiresAt = nil

	good, err := IssueSessionToken("sid", "correct-secret", time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("IssueSessionToken() unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-valid-token"},
		{name: "wrong secret", token: good},
		{name: "wrong issuer", token: signed(SessionClaims{RegisteredClaims: wrongIssuer, SessionID: "sid"})},
		{name: "wrong audience", token: signed(SessionClaims{RegisteredClaims: wrongAudience, SessionID: "sid"})},
		{name: "expired", token: signed(SessionClaims{RegisteredClaims: expired, SessionID: "sid"})},
		{name: "no session id", token: signed(SessionClaims{RegisteredClaims: valid()})},
		{name: "no expiry", token: signed(SessionClaims{RegisteredClaims: noExpiry, SessionID: "sid"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSessionToken(tt.token, "test-secret", time.Now()); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ParseSessionToken() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}

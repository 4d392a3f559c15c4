package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// tamperSignature flips one character in the middle of the signature segment.
func tamperSignature(t *testing.T, token string) string {
	t.Helper()
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	i := len(sig) / 2
	if sig[i] == 'A' {
		sig[i] = 'B'
	} else {
		sig[i] = 'A'
	}
	parts[2] = string(sig)
	return strings.Join(parts, ".")
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, time.Hour, key, testNow)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != userID {
		t.Errorf("expected UserID %d, got %d", userID, token.UserID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
	if !claims.IssuedAt.Time.Equal(testNow) {
		t.Errorf("expected iat %v, got %v", testNow, claims.IssuedAt.Time)
	}
	if !claims.ExpiresAt.Time.Equal(testNow.Add(time.Hour)) {
		t.Errorf("expected exp %v, got %v", testNow.Add(time.Hour), claims.ExpiresAt.Time)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		issuer string
		key    string
	}{
		{"empty issuer", "", "key"},
		{"empty key", "iss", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, time.Hour, tt.key, testNow)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_SubjectRoundTrip(t *testing.T) {
	for _, userID := range []int64{1, 456, 9007199254740993} {
		genToken, err := GenerateJWTToken("test-issuer", userID, 5*time.Minute, "secret-key", testNow)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer", fixedClock(testNow))
		if err != nil {
			t.Fatalf("expected token to be valid, got error: %v", err)
		}
		if parsedToken.UserID != userID {
			t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
		}
	}
}

func TestValidateAndParseJWTToken_ExpiryBoundary(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", 7, time.Hour, "key", testNow)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "iss", fixedClock(testNow.Add(59*time.Minute))); err != nil {
		t.Fatalf("expected token to be valid before expiry, got %v", err)
	}

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "key", "iss", fixedClock(testNow.Add(time.Hour)))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired at expiry, got %v", err)
	}
}

func TestValidateAndParseJWTToken_NonPositiveTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second, -time.Hour} {
		genToken, err := GenerateJWTToken("iss", 1, ttl, "key", testNow)
		if err != nil {
			t.Fatalf("ttl %v: generate: %v", ttl, err)
		}

		_, err = ValidateAndParseJWTToken(genToken.SignedString, "key", "iss", fixedClock(testNow))
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("ttl %v: expected jwt.ErrTokenExpired, got %v", ttl, err)
		}
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", 1, time.Hour, "correct-key", testNow)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer", fixedClock(testNow))
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_TamperedSignature(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", 1, time.Hour, "key", testNow)

	_, err := ValidateAndParseJWTToken(tamperSignature(t, genToken.SignedString), "key", "iss", fixedClock(testNow))
	if err == nil {
		t.Fatal("tampered token was accepted")
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("tampered token must not be reported as expired: %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", 1, time.Hour, "key", testNow)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer", fixedClock(testNow))
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_NonNumericSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss", fixedClock(testNow)); err == nil {
		t.Error("expected error for non-numeric subject, got nil")
	}
}

func TestValidateAndParseJWTToken_UnsignedToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(unsigned, "key", "iss", fixedClock(testNow)); err == nil {
		t.Error("expected alg=none token to be rejected")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	for _, token := range []string{"", "not.a.token", "abc", "a.b"} {
		if _, err := ValidateAndParseJWTToken(token, "key", "iss", nil); err == nil {
			t.Errorf("expected error for malformed token %q, got nil", token)
		}
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "surrounding spaces", header: "  Bearer abc  ", wantToken: "abc"},
		{name: "empty", header: "", wantErr: ErrMissingCredentials},
		{name: "only spaces", header: "   ", wantErr: ErrMissingCredentials},
		{name: "no scheme", header: "abc.def.ghi", wantErr: ErrMalformedCredentials},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrMalformedCredentials},
		{name: "lowercase scheme", header: "bearer abc", wantErr: ErrMalformedCredentials},
		{name: "scheme only", header: "Bearer", wantErr: ErrMalformedCredentials},
		{name: "scheme and spaces", header: "Bearer    ", wantErr: ErrMalformedCredentials},
		{name: "extra parts", header: "Bearer abc def", wantErr: ErrMalformedCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if token != tt.wantToken {
				t.Fatalf("expected token %q, got %q", tt.wantToken, token)
			}
		})
	}
}

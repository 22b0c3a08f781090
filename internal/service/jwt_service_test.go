package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTService_GenerateParseAccess(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", time.Hour, 30*time.Minute, NewMemoryRefreshTokenStore())

	pair, err := svc.GeneratePair("u1")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected tokens")
	}
	if pair.ExpiresIn != 3600 {
		t.Fatalf("expected expires_in 3600, got %d", pair.ExpiresIn)
	}

	claims, err := svc.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != "u1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", time.Hour, 30*time.Minute, NewMemoryRefreshTokenStore())
	now := time.Now().UTC()
	claims := Claims{
		UserID:    "u1",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "portfolio-api",
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Second)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Second)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ParseAccessToken(signed); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", time.Hour, 30*time.Minute, NewMemoryRefreshTokenStore())

	if _, err := svc.ParseAccessToken("not.a.jwt"); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuing := NewJWTServiceWithStore("secret-a", time.Hour, 30*time.Minute, NewMemoryRefreshTokenStore())
	verifying := NewJWTServiceWithStore("secret-b", time.Hour, 30*time.Minute, NewMemoryRefreshTokenStore())

	pair, err := issuing.GeneratePair("u1")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if _, err := verifying.ParseAccessToken(pair.AccessToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for wrong secret, got %v", err)
	}
}

func TestJWTService_RejectsUnsignedAlgorithm(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", time.Hour, 30*time.Minute, NewMemoryRefreshTokenStore())
	now := time.Now().UTC()
	claims := Claims{
		UserID:    "u1",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "portfolio-api",
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ParseAccessToken(signed); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for alg=none, got %v", err)
	}
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", time.Hour, 30*time.Minute, NewMemoryRefreshTokenStore())
	now := time.Now().UTC()
	claims := Claims{
		UserID:    "u1",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "other-issuer",
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ParseAccessToken(signed); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for wrong issuer, got %v", err)
	}
}

func TestJWTService_RefreshRotation(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", time.Hour, 30*time.Minute, NewMemoryRefreshTokenStore())

	pair, err := svc.GeneratePair("u1")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	refreshed, err := svc.RefreshPair(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh pair: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Fatalf("expected refreshed tokens")
	}

	if _, err := svc.RefreshPair(pair.RefreshToken); err == nil {
		t.Fatalf("expected old refresh token to be revoked")
	}
}

func TestJWTService_RejectsAccessTokenInRefreshFlow(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", time.Hour, 30*time.Minute, NewMemoryRefreshTokenStore())
	pair, err := svc.GeneratePair("u1")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if _, err := svc.RefreshPair(pair.AccessToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for access token used as refresh, got %v", err)
	}
}

func TestJWTService_RevokeRefresh(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", time.Hour, 30*time.Minute, NewMemoryRefreshTokenStore())
	pair, err := svc.GeneratePair("u1")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if err := svc.RevokeRefresh(pair.RefreshToken); err != nil {
		t.Fatalf("revoke refresh: %v", err)
	}
	if _, err := svc.RefreshPair(pair.RefreshToken); err == nil {
		t.Fatalf("expected refresh to fail after revoke")
	}
}

func TestJWTService_RejectsEmptySecret(t *testing.T) {
	svc := NewJWTServiceWithStore("", time.Hour, 30*time.Minute, NewMemoryRefreshTokenStore())

	if _, err := svc.GeneratePair("u1"); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid on empty secret, got %v", err)
	}
}

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/golang-jwt/jwt/v5"
)

type staticKeyfunc struct {
	secret []byte
}

func (s staticKeyfunc) Keyfunc(_ *jwt.Token) (any, error) {
	return s.secret, nil
}

func (s staticKeyfunc) KeyfuncCtx(_ context.Context) jwt.Keyfunc {
	return s.Keyfunc
}

func (s staticKeyfunc) Storage() jwkset.Storage {
	return nil
}

func (s staticKeyfunc) VerificationKeySet(_ context.Context) (jwt.VerificationKeySet, error) {
	return jwt.VerificationKeySet{}, nil
}

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	return signed
}

func makeClaims(issuer string, audience any) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss": issuer,
		"sub": "user-1",
		"aud": audience,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}

func newTestAuthenticator(secret []byte) *jwksAuthenticator {
	return &jwksAuthenticator{
		issuer:   "http://idp.local/realms/netops",
		audience: "subnet-registry",
		jwks:     staticKeyfunc{secret: secret},
	}
}

func TestAuthenticateReturnsPrincipal(t *testing.T) {
	authenticator := newTestAuthenticator([]byte("test-secret"))

	token := signToken(t, makeClaims("http://idp.local/realms/netops", []string{"subnet-registry"}), []byte("test-secret"))
	principal, err := authenticator.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if principal.Issuer != "http://idp.local/realms/netops" {
		t.Fatalf("unexpected issuer: %v", principal.Issuer)
	}
	if principal.Subject != "user-1" {
		t.Fatalf("unexpected subject: %v", principal.Subject)
	}
}

func TestAuthenticateRejectsWrongAudience(t *testing.T) {
	authenticator := newTestAuthenticator([]byte("test-secret"))

	token := signToken(t, makeClaims("http://idp.local/realms/netops", []string{"other-api"}), []byte("test-secret"))
	if _, err := authenticator.Authenticate(context.Background(), token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthenticateRejectsWrongIssuer(t *testing.T) {
	authenticator := newTestAuthenticator([]byte("test-secret"))

	token := signToken(t, makeClaims("http://rogue.local", []string{"subnet-registry"}), []byte("test-secret"))
	if _, err := authenticator.Authenticate(context.Background(), token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	authenticator := newTestAuthenticator([]byte("test-secret"))

	claims := makeClaims("http://idp.local/realms/netops", []string{"subnet-registry"})
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, claims, []byte("test-secret"))
	if _, err := authenticator.Authenticate(context.Background(), token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthenticateRejectsWrongSignature(t *testing.T) {
	authenticator := newTestAuthenticator([]byte("test-secret"))

	token := signToken(t, makeClaims("http://idp.local/realms/netops", []string{"subnet-registry"}), []byte("other-secret"))
	if _, err := authenticator.Authenticate(context.Background(), token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewJWKSAuthenticatorDisabled(t *testing.T) {
	authenticator, err := NewJWKSAuthenticator(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if authenticator != nil {
		t.Fatal("expected no authenticator when auth is disabled")
	}
}

func TestNewJWKSAuthenticatorFailsWhenJWKSUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/certs" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("no jwks"))
	}))
	defer server.Close()

	_, err := NewJWKSAuthenticator(context.Background(), Config{
		Enabled:  true,
		Issuer:   "http://idp.local/realms/netops",
		JWKSURL:  server.URL + "/certs",
		Audience: "subnet-registry",
	})
	if err == nil {
		t.Fatal("expected error when the jwks endpoint is unavailable")
	}
	if !strings.Contains(err.Error(), server.URL) {
		t.Fatalf("error should name the jwks url, got %v", err)
	}
}

func TestNewJWKSAuthenticatorRequiresIssuerOrURL(t *testing.T) {
	if _, err := NewJWKSAuthenticator(context.Background(), Config{Enabled: true}); err == nil {
		t.Fatal("expected error without issuer or jwks url")
	}
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	if _, ok := PrincipalFromContext(ctx); ok {
		t.Fatal("expected no principal on a fresh context")
	}

	ctx = WithPrincipal(ctx, Principal{Subject: "user-1"})
	principal, ok := PrincipalFromContext(ctx)
	if !ok || principal.Subject != "user-1" {
		t.Fatalf("unexpected principal: %+v ok=%v", principal, ok)
	}
}

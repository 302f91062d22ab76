// Package auth issues and verifies the HMAC-signed session tokens used by
// the HTTP API and the websocket gateway.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/pick6/go/internal/httpx"
	"github.com/mcdev12/pick6/go/internal/models"
)

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	UserID      uuid.UUID
	Email       string
	DisplayName string
}

type claims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Authenticator signs and verifies session tokens.
type Authenticator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clockwork.Clock
}

func NewAuthenticator(secret []byte, issuer string, ttl time.Duration, clock clockwork.Clock) *Authenticator {
	return &Authenticator{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		clock:  clock,
	}
}

// IssueToken mints a signed token for the user.
func (a *Authenticator) IssueToken(user models.User) (string, error) {
	now := a.clock.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the principal it identifies.
func (a *Authenticator) Verify(tokenString string) (Principal, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(a.issuer),
		jwt.WithTimeFunc(a.clock.Now),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("parse token: %w", err)
	}

	userID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("parse subject: %w", err)
	}
	return Principal{
		UserID:      userID,
		Email:       parsed.Email,
		DisplayName: parsed.DisplayName,
	}, nil
}

type contextKey struct{}

// WithPrincipal returns a context carrying the principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// PrincipalFromContext returns the authenticated caller, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}

// Middleware authenticates requests via a Bearer token or, for websocket
// upgrades that cannot set headers, a token query parameter.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			tokenString = r.URL.Query().Get("token")
		}
		if tokenString == "" {
			httpx.WriteJSON(w, http.StatusUnauthorized, httpx.ErrorBody{Error: "missing credentials", Kind: "forbidden"})
			return
		}

		p, err := a.Verify(tokenString)
		if err != nil {
			httpx.WriteJSON(w, http.StatusUnauthorized, httpx.ErrorBody{Error: "invalid or expired token", Kind: "forbidden"})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

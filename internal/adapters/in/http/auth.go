package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	actorContextKey = "actor"
	tokenCookieName = "token"
	loginPath       = "/login"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims: the subject is the user ID, role its token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TokenIssuer) Issue(actor user.Actor) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}
	now := time.Now()
	claims := Claims{
		Role: actor.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenIssuer) Parse(tokenStr string) (user.Actor, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return user.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return user.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	role, ok := user.ParseRole(claims.Role)
	if !ok {
		return user.Actor{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return user.NewActor(id, role)
}

func bearerToken(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie(tokenCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// Authenticate resolves the session token into the request actor.
// Requests without a valid token are redirected to the login page.
func Authenticate(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.Redirect(http.StatusFound, loginPath)
			}
			actor, err := issuer.Parse(token)
			if err != nil {
				c.Logger().Debugf("rejected token: %v", err)
				return c.Redirect(http.StatusFound, loginPath)
			}
			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// RequireRoles lets the request through when the actor's role matches one
// of the role tokens. Unknown tokens never match.
func RequireRoles(tokens ...string) echo.MiddlewareFunc {
	allowed := make([]user.Role, 0, len(tokens))
	for _, token := range tokens {
		if role, ok := user.ParseRole(token); ok {
			allowed = append(allowed, role)
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := actorFrom(c)
			if !ok {
				return c.Redirect(http.StatusFound, loginPath)
			}
			if !actor.Role().In(allowed...) {
				return c.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: "forbidden"})
			}
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (user.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(user.Actor)
	if !ok || actor.Validate() != nil {
		return user.Actor{}, false
	}
	return actor, true
}

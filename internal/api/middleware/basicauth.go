package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/orgstack/employee-management/internal/api/metrics"
	"github.com/orgstack/employee-management/internal/core/domain"
	"github.com/orgstack/employee-management/internal/core/ports"
	rediscache "github.com/orgstack/employee-management/internal/infrastructure/db/redis"
)

// Context keys populated by BasicAuth for downstream middleware and handlers.
const (
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// CredentialCache abstracts the short-TTL store of verified credential pairs.
// Cache failures are non-fatal; the middleware falls back to a full bcrypt
// compare.
type CredentialCache interface {
	IsVerified(ctx context.Context, username, fingerprint string) (bool, error)
	MarkVerified(ctx context.Context, username, fingerprint string) error
}

// BasicAuth authenticates every request from its Authorization header. Each
// request carries the full username/password pair; no session state exists
// between requests. On success the username and role are injected into the
// echo context.
func BasicAuth(users ports.UserRepository, cache CredentialCache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, password, ok := parseBasicAuth(c.Request().Header.Get("Authorization"))
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed credentials")
			}

			ctx := c.Request().Context()
			user, err := users.FindByUsername(ctx, username)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
				}
				return err
			}

			if !verifyPassword(ctx, cache, user, password) {
				metrics.AuthFailuresTotal.WithLabelValues("bad_password").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
			}

			c.Set(ContextKeyUsername, user.Username)
			c.Set(ContextKeyRole, user.Role)

			return next(c)
		}
	}
}

// verifyPassword checks the presented password against the stored hash,
// consulting the credential cache first so repeat requests skip bcrypt. The
// fingerprint covers the stored hash, so a password change invalidates
// cached entries immediately.
func verifyPassword(ctx context.Context, cache CredentialCache, user *domain.User, password string) bool {
	var fingerprint string
	if cache != nil {
		fingerprint = rediscache.Fingerprint(user.PasswordHash, password)
		if hit, err := cache.IsVerified(ctx, user.Username, fingerprint); err == nil && hit {
			metrics.AuthCacheTotal.WithLabelValues("hit").Inc()
			return true
		}
		metrics.AuthCacheTotal.WithLabelValues("miss").Inc()
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return false
	}

	if cache != nil {
		_ = cache.MarkVerified(ctx, user.Username, fingerprint)
	}
	return true
}

func parseBasicAuth(header string) (username, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}

	username, password, ok = strings.Cut(string(decoded), ":")
	if !ok || username == "" {
		return "", "", false
	}
	return username, password, true
}

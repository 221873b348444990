package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/markobarraza/cafe-marketplace/internal/security/token"
)

// identityKey is the single context slot the gate writes. Handlers read it
// back through Identity instead of fishing for loose fields.
const identityKey = "auth_identity"

// Auth validates the bearer token and attaches the resolved claims to the
// request context. All verification failures collapse into the same 401 so a
// caller cannot distinguish a bad signature from an expired token; the
// sub-reason only goes to the log. The gate never touches the store.
func Auth(verifier *token.Issuer, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(identityKey, claims)
			return next(c)
		}
	}
}

// Identity returns the claims attached by Auth, if any.
func Identity(c echo.Context) (*token.Claims, bool) {
	claims, ok := c.Get(identityKey).(*token.Claims)
	return claims, ok
}

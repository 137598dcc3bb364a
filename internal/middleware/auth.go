package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/soyeon-dev/sns-backend/internal/auth"
	"github.com/soyeon-dev/sns-backend/internal/repositories"
)

// IdentityContextKey is where the resolved identity lives in the echo
// context for the remainder of request handling.
const IdentityContextKey = "identity"

// IdentityFrom returns the identity the auth middleware resolved for this
// request. ok is false on unprotected routes or when the middleware did not
// run.
func IdentityFrom(c echo.Context) (auth.Identity, bool) {
	id, ok := c.Get(IdentityContextKey).(auth.Identity)
	return id, ok
}

// AuthMiddleware resolves the caller's identity from a bearer credential in
// the Authorization header or the Authorization cookie. Resolution is
// stateless per request: verify the token, then confirm its nickname still
// maps to a stored user. Each failure category keeps a distinct message so
// clients can tell them apart.
func AuthMiddleware(issuer *auth.TokenIssuer, users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := rawCredential(c)
			if raw == "" {
				return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Login is required."})
			}

			token, ok := stripBearer(raw)
			if !ok {
				return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Token is invalid."})
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Token is invalid."})
			}

			user, err := users.GetUserByNickname(c.Request().Context(), claims.Nickname)
			if err != nil {
				return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Token user no longer exists."})
			}

			c.Set(IdentityContextKey, auth.Identity{UserID: user.ID, Nickname: user.Nickname})
			return next(c)
		}
	}
}

// rawCredential extracts the credential string from the Authorization header
// or, failing that, the Authorization cookie set at login.
func rawCredential(c echo.Context) string {
	if header := c.Request().Header.Get("Authorization"); header != "" {
		return header
	}
	cookie, err := c.Cookie("Authorization")
	if err != nil {
		return ""
	}
	value := cookie.Value
	// Some clients store the cookie percent-encoded ("Bearer%20<token>").
	if decoded, err := url.QueryUnescape(value); err == nil {
		value = decoded
	}
	return value
}

func stripBearer(raw string) (string, bool) {
	parts := strings.SplitN(raw, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

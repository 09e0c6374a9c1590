package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/THANH290803/companyName/internal/auth"
)

type Gate struct {
	Tokens *auth.TokenService
}

func NewGate(tokens *auth.TokenService) *Gate {
	return &Gate{Tokens: tokens}
}

// RequireAuth reads the bearer token from the Authorization header. A
// missing header is rejected before the token service is touched; a
// malformed, forged or expired token gets the same generic 401.
func (g *Gate) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "access denied: no token provided")
		}

		claims, err := g.Tokens.Verify(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		userID, err := claims.UserID()
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		SetIdentity(c, userID, claims.RoleID)
		return next(c)
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// AdminHeader carries the shared admin secret on every admin request.
const AdminHeader = "X-Admin-Password"

const credentialKey = "admin_credential"

// AdminCredential copies the admin header into the echo context. It does not
// verify anything; the contest service does that per operation so a missing
// header and a wrong one fail the same way.
func AdminCredential() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(credentialKey, c.Request().Header.Get(AdminHeader))
			return next(c)
		}
	}
}

// Credential returns the value stored by AdminCredential, falling back to the
// raw header for routes mounted without it.
func Credential(c echo.Context) string {
	if v, ok := c.Get(credentialKey).(string); ok {
		return v
	}
	return c.Request().Header.Get(AdminHeader)
}

// IsWebsocket reports whether the request asks for a protocol upgrade.
func IsWebsocket(c echo.Context) bool {
	return strings.EqualFold(c.Request().Header.Get(echo.HeaderUpgrade), "websocket")
}

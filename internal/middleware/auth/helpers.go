package auth

import (
	"github.com/labstack/echo/v4"
)

const (
	userIDKey = "userID"
	roleIDKey = "roleID"
)

func SetIdentity(c echo.Context, userID, roleID uint) {
	c.Set(userIDKey, userID)
	c.Set(roleIDKey, roleID)
}

// UserID returns the authenticated user's id, or false when the request
// never passed the gate.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(userIDKey).(uint)
	return id, ok
}

func RoleID(c echo.Context) (uint, bool) {
	id, ok := c.Get(roleIDKey).(uint)
	return id, ok
}

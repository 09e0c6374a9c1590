package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/auth"
	"github.com/THANH290803/companyName/internal/hash"
	"github.com/THANH290803/companyName/internal/logging"
	"github.com/THANH290803/companyName/internal/mykafka"
)

type AuthHandler struct {
	DB       *gorm.DB
	Store    *auth.Store
	Tokens   *auth.TokenService
	Producer *mykafka.Producer
}

func (h *AuthHandler) Register(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "auth_register")

	var req struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		RoleID       uint   `json:"role_id"`
		CompanyID    *uint  `json:"company_id"`
		DepartmentID *uint  `json:"department_id"`
		TeamID       *uint  `json:"team_id"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.RoleID == 0 {
		return errorResponse(c, http.StatusBadRequest, "name, email, password and role_id are required")
	}

	user, err := h.Store.Register(c.Request().Context(), auth.NewUser{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		RoleID:       req.RoleID,
		CompanyID:    req.CompanyID,
		DepartmentID: req.DepartmentID,
		TeamID:       req.TeamID,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrDuplicateEmail):
			return errorResponse(c, http.StatusBadRequest, "email already exists")
		case errors.Is(err, hash.ErrWeakPassword):
			return errorResponse(c, http.StatusBadRequest, err.Error())
		default:
			return storageError(c, err)
		}
	}

	l.Info("user registered", "user_id", user.ID)
	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]interface{}{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	return c.JSON(http.StatusCreated, echo.Map{"user": user})
}

func (h *AuthHandler) Login(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "auth_login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	user, err := h.Store.Verify(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Same response for unknown email and wrong password.
			return errorResponse(c, http.StatusBadRequest, "invalid email or password")
		}
		return storageError(c, err)
	}

	token, _, err := h.Tokens.Issue(user.ID, user.RoleID)
	if err != nil {
		l.Error("token issue failed", "error", err)
		return errorResponse(c, http.StatusInternalServerError, "could not issue token")
	}

	l.Info("login successful", "user_id", user.ID)
	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]interface{}{
		"type":    "user_logged_in",
		"user_id": user.ID,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

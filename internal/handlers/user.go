package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/hash"
	"github.com/THANH290803/companyName/internal/models"
	"github.com/THANH290803/companyName/internal/util"
)

type UserHandler struct {
	DB *gorm.DB
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	var total int64
	if err := h.DB.WithContext(c.Request().Context()).Model(&models.User{}).Count(&total).Error; err != nil {
		return storageError(c, err)
	}

	var users []models.User
	if err := h.DB.WithContext(c.Request().Context()).
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&users).Error; err != nil {
		return storageError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": users,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var user models.User
	if err := h.DB.WithContext(c.Request().Context()).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "user not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		RoleID       *uint  `json:"role_id"`
		CompanyID    *uint  `json:"company_id"`
		DepartmentID *uint  `json:"department_id"`
		TeamID       *uint  `json:"team_id"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	var user models.User
	if err := h.DB.WithContext(c.Request().Context()).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "user not found")
		}
		return storageError(c, err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = strings.TrimSpace(strings.ToLower(req.Email))
	}
	if req.Password != "" {
		// A changed password goes through the same policy and is re-hashed.
		if err := hash.ValidatePassword(req.Password); err != nil {
			return errorResponse(c, http.StatusBadRequest, err.Error())
		}
		passwordHash, err := hash.HashPassword(req.Password)
		if err != nil {
			return storageError(c, err)
		}
		user.PasswordHash = passwordHash
	}
	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}
	if req.CompanyID != nil {
		user.CompanyID = req.CompanyID
	}
	if req.DepartmentID != nil {
		user.DepartmentID = req.DepartmentID
	}
	if req.TeamID != nil {
		user.TeamID = req.TeamID
	}

	if err := h.DB.WithContext(c.Request().Context()).Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorResponse(c, http.StatusBadRequest, "email already exists")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result := h.DB.WithContext(c.Request().Context()).Delete(&models.User{}, id)
	if result.Error != nil {
		return storageError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return errorResponse(c, http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/models"
)

type RoleHandler struct {
	DB *gorm.DB
}

func (h *RoleHandler) GetRoles(c echo.Context) error {
	var roles []models.Role
	if err := h.DB.WithContext(c.Request().Context()).Order("id ASC").Find(&roles).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, roles)
}

func (h *RoleHandler) GetRole(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var role models.Role
	if err := h.DB.WithContext(c.Request().Context()).First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "role not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) CreateRole(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" {
		return errorResponse(c, http.StatusBadRequest, "name is required")
	}

	role := models.Role{Name: req.Name}
	if err := h.DB.WithContext(c.Request().Context()).Create(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorResponse(c, http.StatusBadRequest, "role already exists")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, role)
}

func (h *RoleHandler) UpdateRole(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	var role models.Role
	if err := h.DB.WithContext(c.Request().Context()).First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "role not found")
		}
		return storageError(c, err)
	}

	role.Name = req.Name
	if err := h.DB.WithContext(c.Request().Context()).Save(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorResponse(c, http.StatusBadRequest, "role already exists")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) DeleteRole(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result := h.DB.WithContext(c.Request().Context()).Delete(&models.Role{}, id)
	if result.Error != nil {
		return storageError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return errorResponse(c, http.StatusNotFound, "role not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Role deleted successfully"})
}

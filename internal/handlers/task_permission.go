package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/authz"
	mwauth "github.com/THANH290803/companyName/internal/middleware/auth"
	"github.com/THANH290803/companyName/internal/models"
)

type TaskPermissionHandler struct {
	DB *gorm.DB
}

func (h *TaskPermissionHandler) GetPermissions(c echo.Context) error {
	var permissions []models.TaskPermission
	if err := h.DB.WithContext(c.Request().Context()).Order("id ASC").Find(&permissions).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, permissions)
}

func (h *TaskPermissionHandler) GetPermission(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var permission models.TaskPermission
	if err := h.DB.WithContext(c.Request().Context()).First(&permission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "task permission not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, permission)
}

// GrantPermission requires admin on the target task; granting rights is
// itself an admin capability.
func (h *TaskPermissionHandler) GrantPermission(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req struct {
		TaskID         uint `json:"task_id"`
		UserID         uint `json:"user_id"`
		PermissionType int  `json:"permission_type"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.TaskID == 0 || req.UserID == 0 {
		return errorResponse(c, http.StatusBadRequest, "task_id and user_id are required")
	}
	if !authz.ValidLevel(req.PermissionType) {
		return errorResponse(c, http.StatusBadRequest, authz.ErrInvalidLevel.Error())
	}

	if err := authz.Require(c, h.DB, userID, req.TaskID, models.PermissionAdmin); err != nil {
		return err
	}

	permission, err := authz.Grant(c.Request().Context(), h.DB, req.TaskID, req.UserID, req.PermissionType)
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, permission)
}

func (h *TaskPermissionHandler) RevokePermission(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	userID, ok := mwauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var permission models.TaskPermission
	if err := h.DB.WithContext(c.Request().Context()).First(&permission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "task permission not found")
		}
		return storageError(c, err)
	}

	if err := authz.Require(c, h.DB, userID, permission.TaskID, models.PermissionAdmin); err != nil {
		return err
	}

	if err := authz.Revoke(c.Request().Context(), h.DB, permission.TaskID, permission.UserID); err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task permission deleted successfully"})
}

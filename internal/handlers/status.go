package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/models"
)

// TaskStatus and TaskApprovalStatus are both simple named lookup tables;
// their handlers live together.

type TaskStatusHandler struct {
	DB *gorm.DB
}

func (h *TaskStatusHandler) GetStatuses(c echo.Context) error {
	var statuses []models.TaskStatus
	if err := h.DB.WithContext(c.Request().Context()).Order("id ASC").Find(&statuses).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, statuses)
}

func (h *TaskStatusHandler) GetStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var status models.TaskStatus
	if err := h.DB.WithContext(c.Request().Context()).First(&status, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "task status not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

func (h *TaskStatusHandler) CreateStatus(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" {
		return errorResponse(c, http.StatusBadRequest, "name is required")
	}

	status := models.TaskStatus{Name: req.Name}
	if err := h.DB.WithContext(c.Request().Context()).Create(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorResponse(c, http.StatusBadRequest, "task status already exists")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, status)
}

func (h *TaskStatusHandler) UpdateStatus(c echo.Context) error {
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

	var status models.TaskStatus
	if err := h.DB.WithContext(c.Request().Context()).First(&status, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "task status not found")
		}
		return storageError(c, err)
	}

	status.Name = req.Name
	if err := h.DB.WithContext(c.Request().Context()).Save(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorResponse(c, http.StatusBadRequest, "task status already exists")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

func (h *TaskStatusHandler) DeleteStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result := h.DB.WithContext(c.Request().Context()).Delete(&models.TaskStatus{}, id)
	if result.Error != nil {
		return storageError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return errorResponse(c, http.StatusNotFound, "task status not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task status deleted successfully"})
}

type ApprovalStatusHandler struct {
	DB *gorm.DB
}

func (h *ApprovalStatusHandler) GetStatuses(c echo.Context) error {
	var statuses []models.TaskApprovalStatus
	if err := h.DB.WithContext(c.Request().Context()).Order("id ASC").Find(&statuses).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, statuses)
}

func (h *ApprovalStatusHandler) GetStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var status models.TaskApprovalStatus
	if err := h.DB.WithContext(c.Request().Context()).First(&status, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "approval status not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

func (h *ApprovalStatusHandler) CreateStatus(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" {
		return errorResponse(c, http.StatusBadRequest, "name is required")
	}

	status := models.TaskApprovalStatus{Name: req.Name}
	if err := h.DB.WithContext(c.Request().Context()).Create(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorResponse(c, http.StatusBadRequest, "approval status already exists")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, status)
}

func (h *ApprovalStatusHandler) UpdateStatus(c echo.Context) error {
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

	var status models.TaskApprovalStatus
	if err := h.DB.WithContext(c.Request().Context()).First(&status, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "approval status not found")
		}
		return storageError(c, err)
	}

	status.Name = req.Name
	if err := h.DB.WithContext(c.Request().Context()).Save(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorResponse(c, http.StatusBadRequest, "approval status already exists")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

func (h *ApprovalStatusHandler) DeleteStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result := h.DB.WithContext(c.Request().Context()).Delete(&models.TaskApprovalStatus{}, id)
	if result.Error != nil {
		return storageError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return errorResponse(c, http.StatusNotFound, "approval status not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Approval status deleted successfully"})
}

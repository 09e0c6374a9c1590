package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/models"
)

type TaskStageHandler struct {
	DB *gorm.DB
}

func (h *TaskStageHandler) GetStages(c echo.Context) error {
	var stages []models.TaskStage
	if err := h.DB.WithContext(c.Request().Context()).Order("id ASC").Find(&stages).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, stages)
}

func (h *TaskStageHandler) GetStage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var stage models.TaskStage
	if err := h.DB.WithContext(c.Request().Context()).First(&stage, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "task stage not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, stage)
}

func (h *TaskStageHandler) CreateStage(c echo.Context) error {
	var req struct {
		ProjectID uint   `json:"project_id"`
		Title     string `json:"title"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.ProjectID == 0 {
		return errorResponse(c, http.StatusBadRequest, "project_id is required")
	}

	stage := models.TaskStage{ProjectID: req.ProjectID, Title: req.Title}
	if err := h.DB.WithContext(c.Request().Context()).Create(&stage).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, stage)
}

func (h *TaskStageHandler) UpdateStage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		ProjectID *uint   `json:"project_id"`
		Title     *string `json:"title"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	var stage models.TaskStage
	if err := h.DB.WithContext(c.Request().Context()).First(&stage, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "task stage not found")
		}
		return storageError(c, err)
	}

	if req.ProjectID != nil {
		stage.ProjectID = *req.ProjectID
	}
	if req.Title != nil {
		stage.Title = *req.Title
	}

	if err := h.DB.WithContext(c.Request().Context()).Save(&stage).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, stage)
}

func (h *TaskStageHandler) DeleteStage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result := h.DB.WithContext(c.Request().Context()).Delete(&models.TaskStage{}, id)
	if result.Error != nil {
		return storageError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return errorResponse(c, http.StatusNotFound, "task stage not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task stage deleted successfully"})
}

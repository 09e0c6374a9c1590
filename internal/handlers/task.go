package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/authz"
	"github.com/THANH290803/companyName/internal/logging"
	mwauth "github.com/THANH290803/companyName/internal/middleware/auth"
	"github.com/THANH290803/companyName/internal/models"
	"github.com/THANH290803/companyName/internal/mykafka"
	"github.com/THANH290803/companyName/internal/util"
)

type TaskHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

func (h *TaskHandler) GetTasks(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	var total int64
	if err := h.DB.WithContext(c.Request().Context()).Model(&models.Task{}).Count(&total).Error; err != nil {
		return storageError(c, err)
	}

	var tasks []models.Task
	if err := h.DB.WithContext(c.Request().Context()).
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&tasks).Error; err != nil {
		return storageError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": tasks,
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

func (h *TaskHandler) FilterTasks(c echo.Context) error {
	statusID, err := parseID(c, "status_id")
	if err != nil {
		return err
	}
	stageID, err := parseID(c, "stage_id")
	if err != nil {
		return err
	}

	var tasks []models.Task
	if err := h.DB.WithContext(c.Request().Context()).
		Where("status_id = ? AND stage_id = ?", statusID, stageID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var task models.Task
	if err := h.DB.WithContext(c.Request().Context()).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "task not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req struct {
		Title            string     `json:"title"`
		Description      string     `json:"description"`
		AssignedTo       *uint      `json:"assigned_to"`
		StatusID         *uint      `json:"status_id"`
		ApprovalStatusID *uint      `json:"approval_status_id"`
		StageID          *uint      `json:"stage_id"`
		Deadline         *time.Time `json:"deadline"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.Title == "" {
		return errorResponse(c, http.StatusBadRequest, "title is required")
	}

	task := models.Task{
		Title:            req.Title,
		Description:      req.Description,
		CreatedBy:        userID,
		AssignedTo:       req.AssignedTo,
		StatusID:         req.StatusID,
		ApprovalStatusID: req.ApprovalStatusID,
		StageID:          req.StageID,
		Deadline:         req.Deadline,
	}
	if err := h.DB.WithContext(c.Request().Context()).Create(&task).Error; err != nil {
		return storageError(c, err)
	}

	// The creator owns the task.
	if _, err := authz.Grant(c.Request().Context(), h.DB, task.ID, userID, models.PermissionAdmin); err != nil {
		logging.FromContext(c.Request().Context()).Error("creator grant failed", "task_id", task.ID, "error", err)
	}

	publish(c, h.Producer, "task_events", fmt.Sprint(task.ID), map[string]interface{}{
		"type":       "task_created",
		"task_id":    task.ID,
		"created_by": userID,
		"title":      task.Title,
	})

	return c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	userID, ok := mwauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var task models.Task
	if err := h.DB.WithContext(c.Request().Context()).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "task not found")
		}
		return storageError(c, err)
	}

	if err := authz.Require(c, h.DB, userID, task.ID, models.PermissionWrite); err != nil {
		return err
	}

	var req struct {
		Title            *string    `json:"title"`
		Description      *string    `json:"description"`
		AssignedTo       *uint      `json:"assigned_to"`
		StatusID         *uint      `json:"status_id"`
		ApprovalStatusID *uint      `json:"approval_status_id"`
		StageID          *uint      `json:"stage_id"`
		Deadline         *time.Time `json:"deadline"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	if req.Title != nil {
		if *req.Title == "" {
			return errorResponse(c, http.StatusBadRequest, "title cannot be empty")
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssignedTo != nil {
		task.AssignedTo = req.AssignedTo
	}
	if req.StatusID != nil {
		task.StatusID = req.StatusID
	}
	if req.ApprovalStatusID != nil {
		task.ApprovalStatusID = req.ApprovalStatusID
	}
	if req.StageID != nil {
		task.StageID = req.StageID
	}
	if req.Deadline != nil {
		task.Deadline = req.Deadline
	}

	if err := h.DB.WithContext(c.Request().Context()).Save(&task).Error; err != nil {
		return storageError(c, err)
	}

	publish(c, h.Producer, "task_events", fmt.Sprint(task.ID), map[string]interface{}{
		"type":    "task_updated",
		"task_id": task.ID,
		"user_id": userID,
	})

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	userID, ok := mwauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var task models.Task
	if err := h.DB.WithContext(c.Request().Context()).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "task not found")
		}
		return storageError(c, err)
	}

	if err := authz.Require(c, h.DB, userID, task.ID, models.PermissionAdmin); err != nil {
		return err
	}

	if err := h.DB.WithContext(c.Request().Context()).Delete(&models.Task{}, id).Error; err != nil {
		return storageError(c, err)
	}
	// Grants on a deleted task are dead rows; sweep them with it.
	if err := h.DB.WithContext(c.Request().Context()).
		Where("task_id = ?", id).
		Delete(&models.TaskPermission{}).Error; err != nil {
		logging.FromContext(c.Request().Context()).Warn("grant sweep failed", "task_id", id, "error", err)
	}

	publish(c, h.Producer, "task_events", fmt.Sprint(id), map[string]interface{}{
		"type":    "task_deleted",
		"task_id": id,
		"user_id": userID,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully"})
}

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

type TaskMessageHandler struct {
	DB *gorm.DB
}

func (h *TaskMessageHandler) GetMessages(c echo.Context) error {
	var messages []models.TaskMessage
	if err := h.DB.WithContext(c.Request().Context()).Order("id ASC").Find(&messages).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *TaskMessageHandler) GetMessage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var message models.TaskMessage
	if err := h.DB.WithContext(c.Request().Context()).First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "task message not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, message)
}

// CreateMessage requires a read grant on the task being discussed; the
// sender is always the authenticated user.
func (h *TaskMessageHandler) CreateMessage(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req struct {
		TaskID     uint   `json:"task_id"`
		ReceiverID uint   `json:"receiver_id"`
		Content    string `json:"content"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.TaskID == 0 || req.ReceiverID == 0 || req.Content == "" {
		return errorResponse(c, http.StatusBadRequest, "task_id, receiver_id and content are required")
	}

	if err := authz.Require(c, h.DB, userID, req.TaskID, models.PermissionRead); err != nil {
		return err
	}

	message := models.TaskMessage{
		TaskID:     req.TaskID,
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := h.DB.WithContext(c.Request().Context()).Create(&message).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, message)
}

func (h *TaskMessageHandler) DeleteMessage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	userID, ok := mwauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var message models.TaskMessage
	if err := h.DB.WithContext(c.Request().Context()).First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "task message not found")
		}
		return storageError(c, err)
	}

	// Senders delete their own messages; anyone else needs admin on the task.
	if message.SenderID != userID {
		if err := authz.Require(c, h.DB, userID, message.TaskID, models.PermissionAdmin); err != nil {
			return err
		}
	}

	if err := h.DB.WithContext(c.Request().Context()).Delete(&models.TaskMessage{}, id).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task message deleted successfully"})
}

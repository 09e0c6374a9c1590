package authz

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/models"
)

var ErrInvalidLevel = errors.New("permission_type must be 0 (read), 1 (write) or 2 (admin)")

func ValidLevel(level int) bool {
	return level >= models.PermissionRead && level <= models.PermissionAdmin
}

// Grant upserts the (task, user) pair. A repeated grant never lowers an
// existing level, so duplicates collapse to the strongest one. The unique
// index settles concurrent first grants; the loser retries as an update.
func Grant(ctx context.Context, db *gorm.DB, taskID, userID uint, level int) (*models.TaskPermission, error) {
	if !ValidLevel(level) {
		return nil, ErrInvalidLevel
	}

	var perm models.TaskPermission
	err := db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		First(&perm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		perm = models.TaskPermission{
			TaskID:         taskID,
			UserID:         userID,
			PermissionType: level,
		}
		createErr := db.WithContext(ctx).Create(&perm).Error
		if createErr == nil {
			return &perm, nil
		}
		if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return nil, createErr
		}
		if err := db.WithContext(ctx).
			Where("task_id = ? AND user_id = ?", taskID, userID).
			First(&perm).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if level > perm.PermissionType {
		perm.PermissionType = level
		if err := db.WithContext(ctx).Model(&models.TaskPermission{}).
			Where("id = ?", perm.ID).
			Update("permission_type", level).Error; err != nil {
			return nil, err
		}
	}
	return &perm, nil
}

// Check reports whether the user holds a grant of at least the required
// level on the task.
func Check(ctx context.Context, db *gorm.DB, userID, taskID uint, level int) (bool, error) {
	var perm models.TaskPermission
	err := db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		First(&perm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return perm.PermissionType >= level, nil
}

// Revoke removes the grant for the pair.
func Revoke(ctx context.Context, db *gorm.DB, taskID, userID uint) error {
	return db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&models.TaskPermission{}).Error
}

// Require is the single policy-check step every task-scoped handler goes
// through. It maps a missing grant to 403 and a storage failure to 500.
func Require(c echo.Context, db *gorm.DB, userID, taskID uint, level int) error {
	ok, err := Check(c.Request().Context(), db, userID, taskID, level)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "permission check failed")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf("requires permission level %d on task %d", level, taskID))
	}
	return nil
}

package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THANH290803/companyName/internal/models"
)

func (env *testEnv) createTask(token, title string) uint {
	env.t.Helper()

	rec := env.do(http.MethodPost, "/api/task", token, map[string]any{
		"title": title,
	})
	require.Equal(env.t, http.StatusCreated, rec.Code, "create task failed: %s", rec.Body.String())
	body := decode(env.t, rec)
	return uint(body["id"].(float64))
}

func TestCreateTask_CreatorGetsAdminGrant(t *testing.T) {
	env := newTestEnv(t)
	aliceID := env.register("Alice", "alice@x.com", "Abc123!@")
	token := env.login("alice@x.com", "Abc123!@")

	taskID := env.createTask(token, "ship release")

	var perm models.TaskPermission
	require.NoError(t, env.db.Where("task_id = ? AND user_id = ?", taskID, aliceID).First(&perm).Error)
	assert.Equal(t, models.PermissionAdmin, perm.PermissionType)
}

func TestUpdateTask_RequiresWriteGrant(t *testing.T) {
	env := newTestEnv(t)
	env.register("Alice", "alice@x.com", "Abc123!@")
	bobID := env.register("Bob", "bob@x.com", "Abc123!@")
	aliceToken := env.login("alice@x.com", "Abc123!@")
	bobToken := env.login("bob@x.com", "Abc123!@")

	taskID := env.createTask(aliceToken, "ship release")
	path := fmt.Sprintf("/api/task/%d", taskID)

	// No grant: forbidden.
	denied := env.do(http.MethodPut, path, bobToken, map[string]any{"title": "hijacked"})
	assert.Equal(t, http.StatusForbidden, denied.Code)

	// The creator grants Bob write access.
	granted := env.do(http.MethodPost, "/api/task-permission", aliceToken, map[string]any{
		"task_id":         taskID,
		"user_id":         bobID,
		"permission_type": models.PermissionWrite,
	})
	require.Equal(t, http.StatusCreated, granted.Code, granted.Body.String())

	updated := env.do(http.MethodPut, path, bobToken, map[string]any{"title": "ship release v2"})
	require.Equal(t, http.StatusOK, updated.Code, updated.Body.String())
	assert.Contains(t, updated.Body.String(), "ship release v2")

	// Write is not admin: delete stays forbidden for Bob.
	del := env.do(http.MethodDelete, path, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, del.Code)
}

func TestDeleteTask_AdminOnly_SweepsGrants(t *testing.T) {
	env := newTestEnv(t)
	env.register("Alice", "alice@x.com", "Abc123!@")
	aliceToken := env.login("alice@x.com", "Abc123!@")

	taskID := env.createTask(aliceToken, "short lived")
	path := fmt.Sprintf("/api/task/%d", taskID)

	del := env.do(http.MethodDelete, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, del.Code)

	notFound := env.do(http.MethodGet, path, aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, notFound.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.TaskPermission{}).Where("task_id = ?", taskID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestGrantPermission_Validation(t *testing.T) {
	env := newTestEnv(t)
	env.register("Alice", "alice@x.com", "Abc123!@")
	bobID := env.register("Bob", "bob@x.com", "Abc123!@")
	aliceToken := env.login("alice@x.com", "Abc123!@")
	bobToken := env.login("bob@x.com", "Abc123!@")

	taskID := env.createTask(aliceToken, "guarded")

	// Level outside the closed set.
	bad := env.do(http.MethodPost, "/api/task-permission", aliceToken, map[string]any{
		"task_id":         taskID,
		"user_id":         bobID,
		"permission_type": 9,
	})
	assert.Equal(t, http.StatusBadRequest, bad.Code)

	// Only a task admin can hand out grants.
	denied := env.do(http.MethodPost, "/api/task-permission", bobToken, map[string]any{
		"task_id":         taskID,
		"user_id":         bobID,
		"permission_type": models.PermissionAdmin,
	})
	assert.Equal(t, http.StatusForbidden, denied.Code)
}

func TestFilterTasks(t *testing.T) {
	env := newTestEnv(t)
	env.register("Alice", "alice@x.com", "Abc123!@")
	token := env.login("alice@x.com", "Abc123!@")

	status := env.do(http.MethodPost, "/api/task-status", token, map[string]any{"name": "in progress"})
	require.Equal(t, http.StatusCreated, status.Code)
	statusID := uint(decode(t, status)["id"].(float64))

	project := env.do(http.MethodPost, "/api/project", token, map[string]any{"name": "apollo"})
	require.Equal(t, http.StatusCreated, project.Code)
	projectID := uint(decode(t, project)["id"].(float64))

	stage := env.do(http.MethodPost, "/api/task-stage", token, map[string]any{
		"project_id": projectID,
		"title":      "development",
	})
	require.Equal(t, http.StatusCreated, stage.Code)
	stageID := uint(decode(t, stage)["id"].(float64))

	matching := env.do(http.MethodPost, "/api/task", token, map[string]any{
		"title":     "matching",
		"status_id": statusID,
		"stage_id":  stageID,
	})
	require.Equal(t, http.StatusCreated, matching.Code)

	other := env.do(http.MethodPost, "/api/task", token, map[string]any{"title": "other"})
	require.Equal(t, http.StatusCreated, other.Code)

	filtered := env.do(http.MethodGet, fmt.Sprintf("/api/task/filter/%d/%d", statusID, stageID), token, nil)
	require.Equal(t, http.StatusOK, filtered.Code)
	assert.Contains(t, filtered.Body.String(), "matching")
	assert.NotContains(t, filtered.Body.String(), "other")
}

func TestTaskList_Paginated(t *testing.T) {
	env := newTestEnv(t)
	env.register("Alice", "alice@x.com", "Abc123!@")
	token := env.login("alice@x.com", "Abc123!@")

	for i := 0; i < 15; i++ {
		env.createTask(token, fmt.Sprintf("task %d", i))
	}

	rec := env.do(http.MethodGet, "/api/task?page=2&size=10", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	data := body["data"].([]any)
	meta := body["meta"].(map[string]any)
	assert.Len(t, data, 5)
	assert.EqualValues(t, 15, meta["total"])
	assert.EqualValues(t, 2, meta["total_pages"])
	assert.Equal(t, true, meta["has_prev"])
	assert.Equal(t, false, meta["has_next"])
}

func TestTaskMessage_RequiresReadGrant(t *testing.T) {
	env := newTestEnv(t)
	aliceID := env.register("Alice", "alice@x.com", "Abc123!@")
	bobID := env.register("Bob", "bob@x.com", "Abc123!@")
	aliceToken := env.login("alice@x.com", "Abc123!@")
	bobToken := env.login("bob@x.com", "Abc123!@")

	taskID := env.createTask(aliceToken, "discussed")

	// Bob has no grant on the task yet.
	denied := env.do(http.MethodPost, "/api/task-message", bobToken, map[string]any{
		"task_id":     taskID,
		"receiver_id": aliceID,
		"content":     "can I help?",
	})
	assert.Equal(t, http.StatusForbidden, denied.Code)

	granted := env.do(http.MethodPost, "/api/task-permission", aliceToken, map[string]any{
		"task_id":         taskID,
		"user_id":         bobID,
		"permission_type": models.PermissionRead,
	})
	require.Equal(t, http.StatusCreated, granted.Code)

	sent := env.do(http.MethodPost, "/api/task-message", bobToken, map[string]any{
		"task_id":     taskID,
		"receiver_id": aliceID,
		"content":     "can I help?",
	})
	require.Equal(t, http.StatusCreated, sent.Code)

	body := decode(t, sent)
	assert.EqualValues(t, bobID, body["sender_id"])
}

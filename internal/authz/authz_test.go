package authz

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.TaskPermission{}))
	return db
}

func countGrants(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.TaskPermission{}).Count(&count).Error)
	return count
}

func TestGrant_CreatesSingleRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	perm, err := Grant(ctx, db, 1, 2, models.PermissionWrite)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionWrite, perm.PermissionType)
	assert.EqualValues(t, 1, countGrants(t, db))
}

func TestGrant_DuplicatesCollapseToHighestLevel(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := Grant(ctx, db, 1, 2, models.PermissionAdmin)
	require.NoError(t, err)

	// A lower re-grant never downgrades.
	perm, err := Grant(ctx, db, 1, 2, models.PermissionRead)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionAdmin, perm.PermissionType)
	assert.EqualValues(t, 1, countGrants(t, db))

	// A higher re-grant upgrades in place.
	_, err = Grant(ctx, db, 3, 2, models.PermissionRead)
	require.NoError(t, err)
	perm, err = Grant(ctx, db, 3, 2, models.PermissionWrite)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionWrite, perm.PermissionType)
	assert.EqualValues(t, 2, countGrants(t, db))
}

func TestGrant_RejectsInvalidLevel(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := Grant(ctx, db, 1, 2, 5)
	assert.ErrorIs(t, err, ErrInvalidLevel)
	_, err = Grant(ctx, db, 1, 2, -1)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestCheck_LevelComparison(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := Grant(ctx, db, 10, 20, models.PermissionWrite)
	require.NoError(t, err)

	ok, err := Check(ctx, db, 20, 10, models.PermissionRead)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Check(ctx, db, 20, 10, models.PermissionWrite)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Check(ctx, db, 20, 10, models.PermissionAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	// No grant at all.
	ok, err = Check(ctx, db, 99, 10, models.PermissionRead)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRevoke(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := Grant(ctx, db, 1, 2, models.PermissionAdmin)
	require.NoError(t, err)

	require.NoError(t, Revoke(ctx, db, 1, 2))

	ok, err := Check(ctx, db, 2, 1, models.PermissionRead)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.EqualValues(t, 0, countGrants(t, db))
}

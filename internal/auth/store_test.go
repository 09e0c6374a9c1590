package auth

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/hash"
	"github.com/THANH290803/companyName/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Role{}, &models.User{}))

	return &Store{DB: db}
}

func validInput(email string) NewUser {
	return NewUser{
		Name:     "Alice",
		Email:    email,
		Password: "Abc123!@",
		RoleID:   1,
	}
}

func TestStore_Register_Success(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user, err := store.Register(ctx, validInput("alice@x.com"))
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.Equal(t, "alice@x.com", user.Email)
	assert.NotEqual(t, "Abc123!@", user.PasswordHash)
	assert.True(t, hash.CheckPassword(user.PasswordHash, "Abc123!@"))
}

func TestStore_Register_DuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Register(ctx, validInput("alice@x.com"))
	require.NoError(t, err)

	_, err = store.Register(ctx, validInput("alice@x.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Email comparison is case-insensitive.
	_, err = store.Register(ctx, validInput("ALICE@X.COM"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, store.DB.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStore_Register_WeakPasswordNeverStored(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := validInput("bob@x.com")
	in.Password = "abc123" // no symbol

	_, err := store.Register(ctx, in)
	assert.ErrorIs(t, err, hash.ErrWeakPassword)

	var count int64
	require.NoError(t, store.DB.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestStore_Verify(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	registered, err := store.Register(ctx, validInput("alice@x.com"))
	require.NoError(t, err)

	user, err := store.Verify(ctx, "alice@x.com", "Abc123!@")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// Wrong password and unknown email fail with the same error, so the
	// response cannot be used to probe which accounts exist.
	_, wrongPassErr := store.Verify(ctx, "alice@x.com", "Wrong123!@")
	_, unknownErr := store.Verify(ctx, "nobody@x.com", "Abc123!@")
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, unknownErr)
}

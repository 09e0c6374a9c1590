package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/hash"
	"github.com/THANH290803/companyName/internal/models"
)

// Store persists user identities with salted bcrypt hashes.
type Store struct {
	DB *gorm.DB
}

// NewUser carries the raw registration input. The password never touches
// storage; only its hash does.
type NewUser struct {
	Name         string
	Email        string
	Password     string
	RoleID       uint
	CompanyID    *uint
	DepartmentID *uint
	TeamID       *uint
}

// Register validates the password policy before hashing, then relies on
// the unique email index for the final word on duplicates. The pre-check
// is only a fast path; concurrent registrations race to the index.
func (s *Store) Register(ctx context.Context, in NewUser) (*models.User, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := hash.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := hash.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
		RoleID:       in.RoleID,
		CompanyID:    in.CompanyID,
		DepartmentID: in.DepartmentID,
		TeamID:       in.TeamID,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// Verify returns the same error for an unknown email and a wrong password,
// so a caller cannot probe which accounts exist.
func (s *Store) Verify(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

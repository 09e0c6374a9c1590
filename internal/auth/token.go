package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the decoded token payload: user identity in the subject,
// role in a private claim, issued-at and expiry in the registered set.
type Claims struct {
	RoleID uint `json:"role_id"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrMalformedToken
	}
	return uint(id), nil
}

// TokenService issues and verifies HS256-signed, self-contained tokens.
// It holds no state beyond the secret and TTL; nothing is persisted, so
// a token stays valid until its expiry regardless of later account changes.
type TokenService struct {
	Secret []byte
	TTL    time.Duration
}

func (t *TokenService) Issue(userID, roleID uint) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.TTL)
	claims := Claims{
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (t *TokenService) Verify(raw string) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSignature
		}
		return t.Secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrBadSignature):
			return nil, ErrBadSignature
		default:
			return nil, ErrMalformedToken
		}
	}
	if !tkn.Valid {
		return nil, ErrMalformedToken
	}
	return &claims, nil
}

package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"secondserve-backend/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// ResetClaims are the claims carried by a password-reset token. The model
// tag tells the reset handler which principal table to update.
type ResetClaims struct {
	PrincipalID int32                 `json:"principal_id"`
	Email       string                `json:"email"`
	Model       domain.PrincipalModel `json:"model"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateResetToken(p domain.Principal) (string, error)
	ValidateResetToken(tokenString string) (*ResetClaims, error)
}

type tokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiry time.Duration) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (m *tokenManager) GenerateResetToken(p domain.Principal) (string, error) {
	ref := domain.ReferenceFor(p)
	claims := ResetClaims{
		PrincipalID: ref.ID,
		Email:       p.PrincipalEmail(),
		Model:       ref.Model,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(ref.ID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "secondserve",
			Audience:  jwt.ClaimStrings{"password-reset"},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateResetToken(tokenString string) (*ResetClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResetClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*ResetClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

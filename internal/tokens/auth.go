package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// SessionClaims представляет данные JWT токена сессии.
// Поля взаимоисключающие: для аутентифицированного пользователя заполнен
// UserID, для анонимного отслеживаемого посетителя - VisitorUUID.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID      string `json:"uid,omitempty"`
	VisitorUUID string `json:"vid,omitempty"`
}

// GenerateUserJWT создает JWT токен сессии аутентифицированного пользователя.
func GenerateUserJWT(userID string, expire time.Duration, key []byte) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		UserID: userID,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %w", err)
	}
	return token, nil
}

// GenerateVisitorJWT создает JWT токен сессии анонимного посетителя.
func GenerateVisitorJWT(visitorUUID string, expire time.Duration, key []byte) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		VisitorUUID: visitorUUID,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating visitor jwt token: %w", err)
	}
	return token, nil
}

// ValidateSessionJWT проверяет JWT токен сессии и возвращает его claims.
func ValidateSessionJWT(tokenString string, key []byte) (*SessionClaims, error) {
	token, err := validateJWT(tokenString, new(SessionClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating session jwt token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// generateJWT создает JWT токен с указанными данными.
func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %w", err)
	}
	return tokenString, nil
}

// validateJWT проверяет JWT токен.
func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return token, nil
}

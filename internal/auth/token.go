package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL — время жизни сессионного токена. Токены не продлеваются:
// после истечения срока требуется повторный login.
const TokenTTL = time.Hour

var (
	// ErrTokenExpired — подпись верна, но срок действия истёк.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid — любая другая проблема: битая подпись, чужой ключ, мусор.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims — полезная нагрузка сессионного токена.
// Токен самодостаточен: сервер не хранит выданные сессии,
// валидность определяется только подписью и exp.
type Claims struct {
	AccountID int64 `json:"account_id"`
	jwt.RegisteredClaims
}

// BuildToken выпускает подписанный HS256 токен для учётной записи.
func BuildToken(accountID int64, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ParseToken проверяет подпись и срок действия, возвращает id учётной записи.
// Любая порча полезной нагрузки или подписи даёт ErrTokenInvalid,
// истёкший срок — ErrTokenExpired.
func ParseToken(tokenString, secret string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid || claims.AccountID == 0 {
		return 0, ErrTokenInvalid
	}
	return claims.AccountID, nil
}

package middleware

import (
	"VoltVault/internal/auth"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// GetAccountIDFromContext возвращает id учётной записи, положенный WithAuth.
// Это единственный источник идентичности владельца для нижележащих слоёв.
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(accountIDKey).(int64)
	return id, ok
}

// bearerToken извлекает токен из заголовка Authorization формата "Bearer <token>".
func bearerToken(value string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(value, prefix) {
		return "", false
	}
	token := value[len(prefix):]
	if token == "" {
		return "", false
	}
	return token, true
}

// WithAuth — страж защищённых маршрутов.
// Отсутствующий или кривой заголовок — 401 (клиенту нужно войти),
// битый или истёкший токен — 403 (клиенту нужно войти заново).
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			accountID, err := auth.ParseToken(token, secret)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// Package middleware промежуточные обработчики HTTP
package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// AdminTokenHeader заголовок с токеном админ-панели
const AdminTokenHeader = "X-Admin-Token"

const (
	msgMissingAdminToken = "отсутствует токен администратора"
	msgInvalidAdminToken = "некорректный токен администратора"
	msgAdminDisabled     = "админ-панель отключена"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth проверяет токен админ-панели в заголовке X-Admin-Token
// Пустой сконфигурированный токен полностью отключает админ-маршруты
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				logger.Warn("AdminAuth: admin token is not configured, rejecting %s %s", r.Method, r.URL.Path)
				respondError(w, http.StatusForbidden, msgAdminDisabled)
				return
			}

			provided := r.Header.Get(AdminTokenHeader)
			if provided == "" {
				logger.Warn("AdminAuth: missing admin token for %s %s", r.Method, r.URL.Path)
				respondError(w, http.StatusUnauthorized, msgMissingAdminToken)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("AdminAuth: invalid admin token for %s %s", r.Method, r.URL.Path)
				respondError(w, http.StatusForbidden, msgInvalidAdminToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

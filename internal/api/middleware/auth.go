package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avanturapark/booking-service/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном персонала
const AdminTokenHeader = "X-Admin-Token"

// Auth проверяет токен персонала в заголовке X-Admin-Token.
// Сравнение константное по времени.
func Auth(adminToken string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AdminTokenHeader)

			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "Anmeldung erforderlich")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// トークンの検証は行いません。auth.enabled=false のときだけ使うこと
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-User-ID header missing")
			unauthorized(w, r)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-User-ID format", "value", userIDStr)
			unauthorized(w, r)
			return
		}

		logger.Debug("[DEV AUTH] User ID set to context (no validation)", "user_id", userID.String())
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

// echoUserHandler はコンテキストのユーザーIDをそのまま返すハンドラ
func echoUserHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(userID.String()))
	})
}

func assertUnauthorized(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, model.CodeUnauthorized, resp.Error.Code)
	assert.Equal(t, "認証に失敗しました。", resp.Error.Message)
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := config.JWTConfig{SecretKey: testSecret, Issuer: "https://auth.example.com", Audience: "flashcard-api"}
	handler := JWTAuthMiddleware(cfg)(echoUserHandler(t))
	userID := uuid.New()

	validClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": userID.String(),
			"iss": cfg.Issuer,
			"aud": cfg.Audience,
			"exp": time.Now().Add(time.Hour).Unix(),
		}
	}

	tests := []struct {
		name   string
		header func() string
		wantOK bool
	}{
		{
			name:   "正常系: 有効なトークン",
			header: func() string { return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, validClaims()) },
			wantOK: true,
		},
		{
			name:   "異常系: ヘッダーなし",
			header: func() string { return "" },
		},
		{
			name:   "異常系: Bearer 形式でない",
			header: func() string { return "Token abc" },
		},
		{
			name:   "異常系: 署名鍵が違う",
			header: func() string { return "Bearer " + signToken(t, "other", jwt.SigningMethodHS256, validClaims()) },
		},
		{
			name:   "異常系: HS256 以外のアルゴリズム",
			header: func() string { return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS512, validClaims()) },
		},
		{
			name: "異常系: 有効期限切れ",
			header: func() string {
				c := validClaims()
				c["exp"] = time.Now().Add(-time.Minute).Unix()
				return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, c)
			},
		},
		{
			name: "異常系: exp なし",
			header: func() string {
				c := validClaims()
				delete(c, "exp")
				return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, c)
			},
		},
		{
			name: "異常系: 発行者が違う",
			header: func() string {
				c := validClaims()
				c["iss"] = "https://evil.example.com"
				return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, c)
			},
		},
		{
			name: "異常系: sub がUUIDでない",
			header: func() string {
				c := validClaims()
				c["sub"] = "user-1"
				return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, c)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/decks", nil)
			if h := tt.header(); h != "" {
				req.Header.Set("Authorization", h)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if tt.wantOK {
				assert.Equal(t, http.StatusOK, rr.Code)
				assert.Equal(t, userID.String(), rr.Body.String())
				return
			}
			assertUnauthorized(t, rr)
		})
	}
}

func TestDevUserContextMiddleware(t *testing.T) {
	handler := DevUserContextMiddleware(echoUserHandler(t))

	t.Run("正常系: X-User-ID をそのまま使う", func(t *testing.T) {
		userID := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, userID.String(), rr.Body.String())
	})

	for name, value := range map[string]string{
		"異常系: ヘッダーなし":   "",
		"異常系: UUIDでない": "not-a-uuid",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if value != "" {
				req.Header.Set("X-User-ID", value)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assertUnauthorized(t, rr)
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserIDFromContext(req.Context())
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

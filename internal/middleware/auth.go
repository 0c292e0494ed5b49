package middleware

import (
	"context"
	"net/http"
	"strings"

	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// 認証失敗時はどの段階で失敗したかをクライアントに伝えない
const unauthorizedMessage = "認証に失敗しました。"

func unauthorized(w http.ResponseWriter, r *http.Request) {
	appErr := model.NewAppError(model.CodeUnauthorized, unauthorizedMessage, "", model.ErrUnauthorized)
	webutil.HandleError(w, GetLogger(r.Context()), appErr)
}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// sub クレームのユーザーIDをコンテキストに格納するミドルウェア
func JWTAuthMiddleware(cfg config.JWTConfig) func(http.Handler) http.Handler {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	parser := jwt.NewParser(opts...)
	secret := []byte(cfg.SecretKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			// 1. Authorization ヘッダーからトークンを取得
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				unauthorized(w, r)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.SplitN(authHeader, " ", 2)
			if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") || headerParts[1] == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				unauthorized(w, r)
				return
			}

			// 2. 署名・有効期限・発行者・対象者を検証
			claims := jwt.MapClaims{}
			token, err := parser.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
				return secret, nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				unauthorized(w, r)
				return
			}

			// 3. sub からユーザーIDを取得
			subject, err := claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				unauthorized(w, r)
				return
			}
			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				unauthorized(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID はユーザーIDとユーザーID付きロガーをコンテキストに格納します
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	return context.WithValue(ctx, logCtxKey{}, GetLogger(ctx).With("user_id", userID.String()))
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		// 認証ミドルウェアを通っていない
		return uuid.Nil, model.NewAppError(model.CodeUnauthorized, unauthorizedMessage, "", model.ErrUnauthorized)
	}
	return value, nil
}

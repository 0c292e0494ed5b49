// internal/model/user.go
package model

type ContextKey string

const (
	// UserIDKey は認証済みユーザーID (uuid.UUID) をコンテキストに格納するキー
	UserIDKey ContextKey = "userID"
)

// DataResponse は成功時の共通レスポンス ({"data": ...})
type DataResponse struct {
	Data interface{} `json:"data"`
	Meta interface{} `json:"meta,omitempty"`
}

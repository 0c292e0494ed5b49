// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "FlashcardKeep"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultRequestTimeout = 90 * time.Second
	DefaultDatabaseDriver = "postgres"
	DefaultLogLevel       = "info"

	DefaultAIModel       = "gemini-1.5-flash-latest"
	DefaultAITimeout     = 60 * time.Second
	DefaultAITemperature = float32(0.3)

	DefaultGenerationDailyLimit    = 10
	DefaultGenerationMaxInputChars = 10000

	DefaultLearnLimit        = 50
	DefaultLearnMaxLimit     = 100
	DefaultReviewConcurrency = 8
)

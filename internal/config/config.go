// internal/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
	// リクエスト全体のタイムアウト。AI生成より長くしておくこと
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type DatabaseConfig struct {
	URL         string `mapstructure:"url"`
	Driver      string `mapstructure:"driver"` // "postgres" or "sqlite"
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// JWTConfig は外部IDプロバイダが発行するトークンの検証設定
type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

type AIConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Temperature float32       `mapstructure:"temperature"`
}

type GenerationConfig struct {
	DailyLimit       int    `mapstructure:"daily_limit"`
	MaxInputChars    int    `mapstructure:"max_input_chars"`
	RejectDuplicates bool   `mapstructure:"reject_duplicates"`
	Timezone         string `mapstructure:"timezone"`
}

type LearnConfig struct {
	DefaultLimit      int `mapstructure:"default_limit"`
	MaxLimit          int `mapstructure:"max_limit"`
	ReviewConcurrency int `mapstructure:"review_concurrency"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Log        LogConfig        `mapstructure:"log"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Auth       AuthConfig       `mapstructure:"auth"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	AI         AIConfig         `mapstructure:"ai"`
	Generation GenerationConfig `mapstructure:"generation"`
	Learn      LearnConfig      `mapstructure:"learn"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env があれば先に環境変数へ読み込む (なくてもエラーにしない)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP") // 例: APP_DATABASE_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("ai.api_key", "GEMINI_API_KEY")
	v.BindEnv("jwt.secret_key", "JWT_SECRET")
	v.BindEnv("database.url", "DATABASE_URL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// auth.enabled が未設定なら有効にする
	if !v.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		cfg.Auth.Enabled = true
	}

	cfg.ApplyDefaults()
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("AI Model: %s (timeout %s)", Cfg.AI.Model, Cfg.AI.Timeout)
	log.Printf("Generation Daily Limit: %d", Cfg.Generation.DailyLimit)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

// ApplyDefaults は未設定または不正な値をデフォルト値で埋めます。
// テストで Config を直接組み立てる場合もこれを呼ぶ。
func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = DefaultServerPort
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DefaultDatabaseDriver
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Authorization", "Content-Type", "X-User-ID"}
	}
	if c.AI.Model == "" {
		c.AI.Model = DefaultAIModel
	}
	if c.AI.Timeout <= 0 {
		c.AI.Timeout = DefaultAITimeout
	}
	if c.AI.Temperature <= 0 {
		c.AI.Temperature = DefaultAITemperature
	}
	if c.Generation.DailyLimit <= 0 {
		c.Generation.DailyLimit = DefaultGenerationDailyLimit
	}
	if c.Generation.MaxInputChars <= 0 {
		c.Generation.MaxInputChars = DefaultGenerationMaxInputChars
	}
	if c.Learn.DefaultLimit <= 0 {
		c.Learn.DefaultLimit = DefaultLearnLimit
	}
	if c.Learn.MaxLimit <= 0 {
		c.Learn.MaxLimit = DefaultLearnMaxLimit
	}
	if c.Learn.DefaultLimit > c.Learn.MaxLimit {
		c.Learn.DefaultLimit = c.Learn.MaxLimit
	}
	if c.Learn.ReviewConcurrency <= 0 {
		c.Learn.ReviewConcurrency = DefaultReviewConcurrency
	}
}

// Location は日次上限の「今日」を判定するタイムゾーンを返します。
func (g GenerationConfig) Location() *time.Location {
	if g.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		log.Printf("Invalid generation timezone %q, falling back to local: %v", g.Timezone, err)
		return time.Local
	}
	return loc
}

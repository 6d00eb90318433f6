// Package config は環境変数（と .env）からアプリケーション設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// キーストアのバックエンド
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config はアプリケーション全体の環境設定を保持する構造体です。
// モデル名とキャッシュ期間の既定値は generator / asset パッケージの既定値と揃えています。
type Config struct {
	// GeminiAPIKey は起動時にキーストアへ投入する初期キーです（任意）。
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	ImageModel    string `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-3-pro-image-preview"`
	ValidateModel string `env:"GEMINI_VALIDATE_MODEL" envDefault:"gemini-3-flash-preview"`

	KeystoreBackend string `env:"KEYSTORE_BACKEND" envDefault:"file"`
	KeystorePath    string `env:"KEYSTORE_PATH"`
	RedisAddr       string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix  string `env:"REDIS_KEY_PREFIX" envDefault:"gemini-fashion-kit:"`

	HTTPTimeout           time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	GenerationMinInterval time.Duration `env:"GENERATION_MIN_INTERVAL" envDefault:"0s"`
	AssetCacheTTL         time.Duration `env:"ASSET_CACHE_TTL" envDefault:"30m"`
	EnableGCS             bool          `env:"ENABLE_GCS" envDefault:"false"`

	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load は .env があれば読み込んだうえで、環境変数から Config を作ります。
// 既に設定されている環境変数は .env で上書きされません。
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug(".env ファイルが見つからないため、環境変数のみを使用します")
		} else {
			slog.Warn(".env ファイルの読み込みに失敗しました", "error", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("環境変数の解析に失敗しました: %w", err)
	}
	cfg.GeminiAPIKey = strings.TrimSpace(cfg.GeminiAPIKey)
	cfg.KeystoreBackend = strings.ToLower(strings.TrimSpace(cfg.KeystoreBackend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値の組み合わせを検証します。
func (c *Config) Validate() error {
	switch c.KeystoreBackend {
	case BackendFile, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("KEYSTORE_BACKEND が不正です: %q (file, redis, memory のいずれか)", c.KeystoreBackend)
	}
	if c.ImageModel == "" {
		return fmt.Errorf("GEMINI_IMAGE_MODEL が空です")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT が不正です: %d", c.Port)
	}
	if c.GenerationMinInterval < 0 {
		return fmt.Errorf("GENERATION_MIN_INTERVAL は 0 以上を指定してください: %s", c.GenerationMinInterval)
	}
	return nil
}

// SlogLevel は LOG_LEVEL を slog.Level に変換します。解釈できなければ Info です。
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Addr は HTTP サーバーの待ち受けアドレスです。
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

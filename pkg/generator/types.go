package generator

import (
	"errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

const (
	DefaultImageModel    = "gemini-3-pro-image-preview"
	DefaultValidateModel = "gemini-3-flash-preview"

	// 抽出系の操作はユーザー設定に関わらず固定の出力形式を使います。
	outfitAspectRatio     = domain.AspectRatioSquare
	backgroundAspectRatio = domain.AspectRatioWide
	extractResolution     = domain.Resolution2K

	validatePrompt = "ping"
)

// ErrNoSourceImage は編集・抽出の元画像が指定されていないことを表します。
var ErrNoSourceImage = errors.New("source image is required")

// Option は Studio の任意設定です。
type Option func(*Studio)

// WithClientFactory はクライアントの作成方法を差し替えます。
func WithClientFactory(f ClientFactory) Option {
	return func(s *Studio) { s.newClient = f }
}

// WithValidateModel は接続確認に使うモデルを指定します。
func WithValidateModel(model string) Option {
	return func(s *Studio) {
		if model != "" {
			s.validateModel = model
		}
	}
}

// WithMinInterval はプロバイダー呼び出しの最小間隔を設定します。0 以下なら制限しません。
func WithMinInterval(interval time.Duration) Option {
	return func(s *Studio) {
		if interval > 0 {
			s.limiter = rate.NewLimiter(rate.Every(interval), 1)
		}
	}
}

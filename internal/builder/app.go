// Package builder は設定からアプリケーションの依存関係を組み立てます。
package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/gemini-fashion-kit/internal/config"
	"github.com/shouni/gemini-fashion-kit/pkg/adapters"
	"github.com/shouni/gemini-fashion-kit/pkg/asset"
	"github.com/shouni/gemini-fashion-kit/pkg/generator"
	"github.com/shouni/gemini-fashion-kit/pkg/keystore"
	"github.com/shouni/gemini-fashion-kit/pkg/studio"
)

// AppContext はコマンド間で共有する依存関係です。
type AppContext struct {
	Config  *config.Config
	Keys    *keystore.Store   // Keys は API キーの保存先です。
	Studio  *generator.Studio // Studio は生成・編集・抽出の各操作です。
	Fetcher *asset.Fetcher    // Fetcher は URL の参照画像を取り込みます。
	Session *studio.Session   // Session は 1 ユーザー分のスタジオ状態です。
	closers []func() error
}

// Close は保持しているリソースを解放します。
func (a *AppContext) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Option は AppContext 構築時の差し替えです（主にテスト用）。
type Option func(*options)

type options struct {
	clientFactory generator.ClientFactory
	httpClient    asset.HTTPClient
}

// WithClientFactory は Gemini クライアントの作成方法を差し替えます。
func WithClientFactory(f generator.ClientFactory) Option {
	return func(o *options) { o.clientFactory = f }
}

// WithHTTPClient は参照画像の取得クライアントを差し替えます。
func WithHTTPClient(c asset.HTTPClient) Option {
	return func(o *options) { o.httpClient = c }
}

// NewAppContext は設定から全コンポーネントを初期化します。
func NewAppContext(ctx context.Context, cfg *config.Config, opts ...Option) (*AppContext, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	app := &AppContext{Config: cfg}

	keys, closeKeys, err := InitializeKeystore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, closeKeys)
	app.Keys = keys

	if err := SeedAPIKey(ctx, keys, cfg.GeminiAPIKey); err != nil {
		_ = app.Close()
		return nil, err
	}

	studioOpts := []generator.Option{
		generator.WithValidateModel(cfg.ValidateModel),
		generator.WithMinInterval(cfg.GenerationMinInterval),
	}
	if o.clientFactory != nil {
		studioOpts = append(studioOpts, generator.WithClientFactory(o.clientFactory))
	}
	app.Studio, err = generator.NewStudio(adapters.NewGeminiImageCore(), keys, cfg.ImageModel, studioOpts...)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("スタジオの初期化に失敗しました: %w", err)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = httpkit.New(cfg.HTTPTimeout)
	}
	reader, err := InitializeReader(ctx, cfg)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Fetcher, err = asset.NewFetcher(httpClient, reader, asset.NewCache(cfg.AssetCacheTTL), cfg.AssetCacheTTL)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("参照画像フェッチャーの初期化に失敗しました: %w", err)
	}

	app.Session, err = studio.NewSession(app.Studio, app.Fetcher)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// InitializeKeystore は KEYSTORE_BACKEND に応じたキーストアを作成します。
// 戻り値の関数でバックエンドの接続を閉じます。
func InitializeKeystore(ctx context.Context, cfg *config.Config) (*keystore.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.KeystoreBackend {
	case config.BackendMemory:
		return keystore.New(keystore.NewMemoryBackend()), noop, nil
	case config.BackendRedis:
		client, err := keystore.ConnectRedis(ctx, keystore.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return keystore.New(keystore.NewRedisBackend(client, cfg.RedisKeyPrefix)), client.Close, nil
	default:
		path := cfg.KeystorePath
		if path == "" {
			p, err := keystore.DefaultFilePath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		slog.Debug("ファイルキーストアを使用します", "path", path)
		return keystore.New(keystore.NewFileBackend(path)), noop, nil
	}
}

// SeedAPIKey は環境変数のキーを、まだキーが保存されていない場合に限り保存します。
func SeedAPIKey(ctx context.Context, keys *keystore.Store, apiKey string) error {
	if apiKey == "" || keys.Configured(ctx) {
		return nil
	}
	if err := keys.Save(ctx, apiKey); err != nil {
		return fmt.Errorf("APIキーの初期投入に失敗しました: %w", err)
	}
	slog.Info("環境変数の API キーをキーストアに保存しました")
	return nil
}

// InitializeReader は ENABLE_GCS のときだけ gs:// 用のリーダーを作成します。
func InitializeReader(ctx context.Context, cfg *config.Config) (remoteio.InputReader, error) {
	if !cfg.EnableGCS {
		return nil, nil
	}
	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}
	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	return reader, nil
}

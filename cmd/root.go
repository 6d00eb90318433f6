package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-fashion-kit/internal/builder"
	"github.com/shouni/gemini-fashion-kit/internal/config"
)

// GlobalOptions はすべてのサブコマンドで共有するフラグです。
type GlobalOptions struct {
	EnvFile      string // --env-file
	SettingsFile string // --settings: 撮影設定の YAML/JSON ファイル
	ImageModel   string // --image-model
	LogLevel     string // --log-level
}

var opts GlobalOptions

var rootCmd = &cobra.Command{
	Use:   "gemini-fashion-kit",
	Short: "Gemini でファッション撮影のプロンプトを組み立て、画像を生成します。",
	Long: `モデル属性・レンズ・レイアウト・ポーズなどの撮影設定からプロンプトを組み立て、
Gemini の画像モデルで生成・編集・衣装/背景の抽出を行います。
serve で HTTP API としても利用できます。`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "読み込む .env ファイル（省略時はカレントの .env）")
	rootCmd.PersistentFlags().StringVarP(&opts.SettingsFile, "settings", "s", "", "撮影設定ファイル（YAML または JSON）")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", "", "画像生成に使う Gemini モデル名（GEMINI_IMAGE_MODEL より優先）")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "ログレベル（debug, info, warn, error）")

	rootCmd.AddCommand(serveCmd, promptCmd, generateCmd, editCmd, extractCmd, keyCmd)
}

// loadConfig は環境変数とフラグから設定を作り、ロガーを設定します。
func loadConfig() (*config.Config, error) {
	var files []string
	if opts.EnvFile != "" {
		files = append(files, opts.EnvFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	if opts.ImageModel != "" {
		cfg.ImageModel = opts.ImageModel
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	setupLogger(cfg)
	return cfg, nil
}

func setupLogger(cfg *config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

// newApp は設定を読み込み、依存関係を組み立てます。呼び出し側で Close してください。
func newApp(ctx context.Context) (*builder.AppContext, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	app, err := builder.NewAppContext(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("アプリケーションの初期化に失敗しました: %w", err)
	}
	return app, nil
}

// Execute は、アプリケーションのメインエントリポイントです。
// SIGINT / SIGTERM でコンテキストがキャンセルされます。
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-fashion-kit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP API サーバーを起動します。",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err := app.Close(); err != nil {
				slog.Warn("リソースの解放に失敗しました", "error", err)
			}
		}()

		settings, err := loadSettings(opts.SettingsFile)
		if err != nil {
			return err
		}
		if err := app.Session.ReplaceSettings(settings); err != nil {
			return err
		}

		srv, err := server.New(app.Session, app.Keys, app.Studio)
		if err != nil {
			return err
		}
		slog.Info("サーバーを起動します", "addr", app.Config.Addr(), "model", app.Config.ImageModel)
		return srv.ListenAndServe(ctx, app.Config.Addr())
	},
}

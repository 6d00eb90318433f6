package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-fashion-kit/internal/builder"
	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

var generateOpts struct {
	output       string
	refModels    []string
	refClothing  []string
	refLocations []string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "撮影設定（と参照画像）から画像を生成します。",
	Long: `--settings の撮影設定から画像を 1 枚生成します。
--ref-model / --ref-clothing / --ref-location を指定すると参照画像モードになります。
参照画像にはローカルファイル、http(s) URL、gs:// URL を指定できます。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		settings, err := loadSettings(opts.SettingsFile)
		if err != nil {
			return err
		}
		if err := app.Session.ReplaceSettings(settings); err != nil {
			return err
		}

		resp, err := runGenerate(ctx, app)
		if err != nil {
			return reportFailure(err)
		}
		slog.Info("画像を生成しました", "label", resp.Label)
		return writeImage(generateOpts.output, resp.DataURI)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateOpts.output, "output", "o", "output.png", "生成画像の保存先")
	generateCmd.Flags().StringSliceVar(&generateOpts.refModels, "ref-model", nil, "モデルの参照画像（複数指定可）")
	generateCmd.Flags().StringSliceVar(&generateOpts.refClothing, "ref-clothing", nil, "衣装の参照画像（複数指定可）")
	generateCmd.Flags().StringSliceVar(&generateOpts.refLocations, "ref-location", nil, "背景の参照画像（複数指定可）")
}

func runGenerate(ctx context.Context, app *builder.AppContext) (*domain.ImageResponse, error) {
	refs := map[domain.PoolKind][]string{
		domain.PoolModel:    generateOpts.refModels,
		domain.PoolClothing: generateOpts.refClothing,
		domain.PoolLocation: generateOpts.refLocations,
	}
	withRefs := false
	for kind, srcs := range refs {
		if len(srcs) == 0 {
			continue
		}
		withRefs = true
		sources := make([]string, 0, len(srcs))
		for _, src := range srcs {
			uri, err := readImageSource(src)
			if err != nil {
				return nil, err
			}
			sources = append(sources, uri)
		}
		if _, err := app.Session.AddUploads(ctx, kind, sources); err != nil {
			return nil, fmt.Errorf("%s の参照画像を読み込めませんでした: %w", kind, err)
		}
	}

	if withRefs {
		return app.Session.GenerateFromReferences(ctx)
	}
	return app.Session.Generate(ctx)
}

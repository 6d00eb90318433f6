package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-fashion-kit/internal/builder"
	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

var extractOpts struct {
	input       string
	instruction string
	output      string
}

var extractCmd = &cobra.Command{
	Use:       "extract [outfit|background]",
	Short:     "写真から衣装または背景だけを取り出します。",
	Long:      "--instruction を指定すると、抽出した画像をさらにその指示で編集します。",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"outfit", "background"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if extractOpts.input == "" {
			return errors.New("--input を指定してください")
		}
		ctx := cmd.Context()
		app, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		source, err := resolveSource(ctx, app.Fetcher, extractOpts.input)
		if err != nil {
			return err
		}
		resp, err := runExtract(ctx, app, args[0], source)
		if err != nil {
			return reportFailure(err)
		}
		slog.Info("抽出が完了しました", "target", args[0])
		return writeImage(extractOpts.output, resp.DataURI)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOpts.input, "input", "i", "", "元画像（ローカルファイル、URL、gs://）")
	extractCmd.Flags().StringVar(&extractOpts.instruction, "instruction", "", "抽出後に適用する編集指示")
	extractCmd.Flags().StringVarP(&extractOpts.output, "output", "o", "extracted.png", "抽出画像の保存先")
}

func runExtract(ctx context.Context, app *builder.AppContext, target, source string) (*domain.ImageResponse, error) {
	extract, edit := app.Studio.ExtractOutfit, app.Studio.EditOutfit
	switch target {
	case "outfit":
	case "background":
		extract, edit = app.Studio.ExtractBackground, app.Studio.EditBackground
	default:
		return nil, fmt.Errorf("unknown extract target: %q", target)
	}

	resp, err := extract(ctx, source)
	if err != nil || extractOpts.instruction == "" {
		return resp, err
	}
	return edit(ctx, resp.DataURI, extractOpts.instruction)
}

package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
)

var editOpts struct {
	input       string
	instruction string
	consistent  bool
	output      string
}

// editCmd は既存の画像を修正するか、同じモデル・衣装で次のカットを作ります。
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "生成済みの画像を指示に従って修正します。",
	RunE: func(cmd *cobra.Command, args []string) error {
		if editOpts.input == "" {
			return errors.New("--input を指定してください")
		}
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
		source, err := resolveSource(ctx, app.Fetcher, editOpts.input)
		if err != nil {
			return err
		}

		run := app.Studio.Edit
		if editOpts.consistent {
			run = app.Studio.GenerateConsistent
		}
		result, err := run(ctx, source, editOpts.instruction, settings)
		if err != nil {
			return reportFailure(err)
		}
		slog.Info("画像を修正しました", "label", result.Label)
		return writeImage(editOpts.output, result.DataURI)
	},
}

func init() {
	editCmd.Flags().StringVarP(&editOpts.input, "input", "i", "", "元画像（ローカルファイル、URL、gs://）")
	editCmd.Flags().StringVar(&editOpts.instruction, "instruction", "", "修正内容、または --consistent 時の新しい状況")
	editCmd.Flags().BoolVar(&editOpts.consistent, "consistent", false, "同じモデル・衣装で新しいカットを生成する")
	editCmd.Flags().StringVarP(&editOpts.output, "output", "o", "edited.png", "修正画像の保存先")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/prompts"
)

var promptOpts struct {
	references bool
	models     int
	clothing   int
	locations  int
}

// promptCmd は API を呼ばずにプロンプトだけを表示します。
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "撮影設定から組み立てたプロンプトを表示します。",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(opts.SettingsFile)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), composePrompt(settings))
		return err
	},
}

func init() {
	promptCmd.Flags().BoolVar(&promptOpts.references, "references", false, "参照画像モードのプロンプトを表示する")
	promptCmd.Flags().IntVar(&promptOpts.models, "models", 0, "参照画像モードでのモデル画像の枚数")
	promptCmd.Flags().IntVar(&promptOpts.clothing, "clothing", 0, "参照画像モードでの衣装画像の枚数")
	promptCmd.Flags().IntVar(&promptOpts.locations, "locations", 0, "参照画像モードでの背景画像の枚数")
}

func composePrompt(s domain.GenerationSettings) string {
	if !promptOpts.references {
		return prompts.Build(s)
	}
	return prompts.References(s, prompts.ReferenceCounts{
		Model:    promptOpts.models,
		Clothing: promptOpts.clothing,
		Location: promptOpts.locations,
	})
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// keyCmd は保存済みの API キーを管理します。
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Gemini API キーを管理します。",
}

var keySetCmd = &cobra.Command{
	Use:   "set <API_KEY>",
	Short: "API キーを保存します。空文字列を渡すと削除します。",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.Keys.Save(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API キーを保存しました。")
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "保存済みの API キーを削除します。",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.Keys.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API キーを削除しました。")
		return nil
	},
}

var keyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "API キーが設定済みかを表示します。",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		status := "未設定"
		if app.Keys.Configured(ctx) {
			status = "設定済み"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "API キー: %s (backend: %s)\n", status, app.Config.KeystoreBackend)
		return nil
	},
}

var keyValidateCmd = &cobra.Command{
	Use:   "validate [API_KEY]",
	Short: "API キーで Gemini に接続できるか確認します。省略時は保存済みのキーを使います。",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		var key string
		if len(args) == 1 {
			key = args[0]
		} else if key, err = app.Keys.Get(ctx); err != nil {
			return err
		}
		if key == "" {
			return errors.New("検証する API キーがありません")
		}

		if err := app.Studio.ValidateConnection(ctx, key); err != nil {
			return reportFailure(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "接続に成功しました。")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd, keyClearCmd, keyStatusCmd, keyValidateCmd)
}

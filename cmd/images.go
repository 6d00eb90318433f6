package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shouni/gemini-fashion-kit/pkg/imgutil"
	"github.com/shouni/gemini-fashion-kit/pkg/studio"
)

// readImageSource はローカルファイルを data URI にします。
// URL と data URI はそのまま返し、取り込みは Session 側で行います。
func readImageSource(src string) (string, error) {
	if isRemote(src) || strings.HasPrefix(src, "data:") {
		return src, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("画像ファイルの読み込みに失敗しました (%s): %w", src, err)
	}
	if !imgutil.IsImage(data) {
		return "", fmt.Errorf("画像ファイルではありません: %s", src)
	}
	return imgutil.ToDataURI(data, imgutil.DefaultJPEGQuality), nil
}

func isRemote(src string) bool {
	for _, prefix := range []string{"http://", "https://", "gs://"} {
		if strings.HasPrefix(src, prefix) {
			return true
		}
	}
	return false
}

// resolveSource は編集・抽出の元画像を data URI にします。URL は fetcher で取得します。
func resolveSource(ctx context.Context, fetcher studio.URLFetcher, src string) (string, error) {
	uri, err := readImageSource(src)
	if err != nil {
		return "", err
	}
	if isRemote(uri) {
		return fetcher.FetchDataURI(ctx, uri)
	}
	return uri, nil
}

// writeImage は data URI の画像をファイルに保存します。
func writeImage(path, dataURI string) error {
	_, data, err := imgutil.ParseDataURI(dataURI)
	if err != nil {
		return fmt.Errorf("生成画像のデコードに失敗しました: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("画像の保存に失敗しました: %w", err)
	}
	slog.Info("画像を保存しました", "path", path, "bytes", len(data))
	return nil
}

// reportFailure はキーの再設定が必要な失敗なら案内を表示します。
func reportFailure(err error) error {
	if studio.IsCredentialFailure(err) {
		fmt.Fprintln(os.Stderr, "API キーを確認してください: gemini-fashion-kit key set <API_KEY>")
	}
	return err
}

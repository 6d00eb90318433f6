package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shouni/gemini-fashion-kit/pkg/catalog"
	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

// loadSettings は既定の撮影設定にファイルの内容を重ねて返します。
// path が空なら既定値のままです。JSON は YAML として読めるのでどちらでも構いません。
func loadSettings(path string) (domain.GenerationSettings, error) {
	settings := catalog.DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("撮影設定ファイルの読み込みに失敗しました (%s): %w", path, err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("撮影設定ファイルの解析に失敗しました (%s): %w", path, err)
	}

	// カット数だけ指定されたファイルでもスロットの長さを揃える
	if settings.LayoutMode == domain.LayoutGrid {
		if err := catalog.ResizeGrid(&settings, settings.GridCount); err != nil {
			return settings, err
		}
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("撮影設定が不正です (%s): %w", path, err)
	}
	return settings, nil
}

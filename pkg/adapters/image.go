package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

// ImageGenerator は 1 回分の生成要求を実行して画像を返すインターフェースです。
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req domain.ImageGenerationRequest) (*domain.ImageResponse, error)
}

// GeminiImageGenerator はドメインの生成要求を Gemini API の形式に変換して実行するアダプター層です。
// 参照画像が何枚あっても 1 回の GenerateContent にまとめます。
type GeminiImageGenerator struct {
	imgCore  ImageGeneratorCore // 共通ロジック保持（コンポジション）
	aiClient ContentGenerator   // 通信クライアント
	model    string             // 使用するモデル名
}

// NewGeminiImageGenerator は GeminiImageCore と依存関係を注入して初期化します。
func NewGeminiImageGenerator(core ImageGeneratorCore, aiClient ContentGenerator, modelName string) (*GeminiImageGenerator, error) {
	if core == nil {
		return nil, fmt.Errorf("core (ImageGeneratorCore) is required")
	}
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (ContentGenerator) is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name is required")
	}
	return &GeminiImageGenerator{
		imgCore:  core,
		aiClient: aiClient,
		model:    modelName,
	}, nil
}

// GenerateImage は参照画像とプロンプトを送信し、分類済みの結果を返します。
// 成功時は画像 1 枚、失敗時はエラー 1 つで、部分的な結果は返しません。
func (a *GeminiImageGenerator) GenerateImage(ctx context.Context, req domain.ImageGenerationRequest) (*domain.ImageResponse, error) {
	contents, err := a.imgCore.BuildContents(req)
	if err != nil {
		return nil, err
	}
	config := a.imgCore.BuildConfig(req)

	slog.InfoContext(ctx, "Geminiに画像生成をリクエストします",
		"model", a.model,
		"ref_count", len(req.References),
		"aspect_ratio", req.AspectRatio,
		"image_size", req.Resolution,
	)

	resp, err := a.aiClient.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("Gemini画像生成エラー: %w", err)
	}

	uri, err := a.imgCore.ParseToResponse(resp)
	if err != nil {
		logClassified(ctx, a.model, err)
		return nil, err
	}
	return &domain.ImageResponse{DataURI: uri}, nil
}

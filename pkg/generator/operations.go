package generator

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/prompts"
)

// Generate は設定だけから画像を生成します。
func (s *Studio) Generate(ctx context.Context, settings domain.GenerationSettings) (*domain.ImageResponse, error) {
	req := domain.ImageGenerationRequest{
		Prompt:      prompts.Build(settings),
		AspectRatio: settings.AspectRatio,
		Resolution:  settings.Resolution,
	}
	return s.execute(ctx, req, GenerateLabel(settings))
}

// GenerateFromReferences は選択済みの参照画像と設定から画像を生成します。
// 画像はモデル、衣装、ロケーションの順に添付されます。
func (s *Studio) GenerateFromReferences(ctx context.Context, sel domain.SelectedSet, settings domain.GenerationSettings) (*domain.ImageResponse, error) {
	if !hasReferenceInput(sel, settings) {
		return nil, domain.ErrNoReferenceSelected
	}
	req := domain.ImageGenerationRequest{
		Prompt:      prompts.References(settings, prompts.CountsOf(sel)),
		References:  orderedReferences(sel),
		AspectRatio: settings.AspectRatio,
		Resolution:  settings.Resolution,
	}
	return s.execute(ctx, req, ReferencesLabel(settings))
}

// Edit は直前の画像を指示に従って修正します。出力形式はユーザー設定に従います。
func (s *Studio) Edit(ctx context.Context, imageURI, instruction string, settings domain.GenerationSettings) (*domain.ImageResponse, error) {
	if err := requireSource(imageURI); err != nil {
		return nil, err
	}
	req := domain.ImageGenerationRequest{
		Prompt:      prompts.Edit(settings, instruction),
		References:  []string{imageURI},
		AspectRatio: settings.AspectRatio,
		Resolution:  settings.Resolution,
	}
	return s.execute(ctx, req, EditLabel(instruction))
}

// GenerateConsistent は同一人物で新しいカットを生成します。
func (s *Studio) GenerateConsistent(ctx context.Context, imageURI, newContext string, settings domain.GenerationSettings) (*domain.ImageResponse, error) {
	if err := requireSource(imageURI); err != nil {
		return nil, err
	}
	req := domain.ImageGenerationRequest{
		Prompt:      prompts.Consistent(settings, newContext),
		References:  []string{imageURI},
		AspectRatio: settings.AspectRatio,
		Resolution:  settings.Resolution,
	}
	return s.execute(ctx, req, ConsistentLabel(newContext))
}

// ExtractOutfit はモデル写真から衣装だけの商品写真を作ります（1:1 / 2K 固定）。
func (s *Studio) ExtractOutfit(ctx context.Context, imageURI string) (*domain.ImageResponse, error) {
	return s.extract(ctx, imageURI, prompts.ExtractOutfitPrompt, outfitAspectRatio)
}

// EditOutfit は抽出済みの衣装画像を修正します（1:1 / 2K 固定）。
func (s *Studio) EditOutfit(ctx context.Context, imageURI, instruction string) (*domain.ImageResponse, error) {
	return s.extract(ctx, imageURI, prompts.EditOutfit(instruction), outfitAspectRatio)
}

// ExtractBackground は人物を取り除いた背景画像を作ります（16:9 / 2K 固定）。
func (s *Studio) ExtractBackground(ctx context.Context, imageURI string) (*domain.ImageResponse, error) {
	return s.extract(ctx, imageURI, prompts.ExtractBackgroundPrompt, backgroundAspectRatio)
}

// EditBackground は抽出済みの背景画像を修正します（16:9 / 2K 固定）。
func (s *Studio) EditBackground(ctx context.Context, imageURI, instruction string) (*domain.ImageResponse, error) {
	return s.extract(ctx, imageURI, prompts.EditBackground(instruction), backgroundAspectRatio)
}

func (s *Studio) extract(ctx context.Context, imageURI, prompt string, ratio domain.AspectRatio) (*domain.ImageResponse, error) {
	if err := requireSource(imageURI); err != nil {
		return nil, err
	}
	req := domain.ImageGenerationRequest{
		Prompt:      prompt,
		References:  []string{imageURI},
		AspectRatio: ratio,
		Resolution:  extractResolution,
	}
	return s.execute(ctx, req, "")
}

// ValidateConnection は渡された API キーで検証用モデルに "ping" を送ります。
// 保存済みのキーは使いません。
func (s *Studio) ValidateConnection(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return domain.ErrMissingCredential
	}
	aiClient, err := s.newClient(ctx, apiKey)
	if err != nil {
		return err
	}
	if _, err := aiClient.GenerateContent(ctx, s.validateModel, genai.Text(validatePrompt), nil); err != nil {
		slog.WarnContext(ctx, "接続確認に失敗しました", "model", s.validateModel, "error", err)
		return fmt.Errorf("接続確認に失敗しました: %w", err)
	}
	return nil
}

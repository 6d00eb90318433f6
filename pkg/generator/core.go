// Package generator はスタジオの各操作（生成・編集・抽出・接続確認）を提供します。
// 呼び出しごとにキーストアから API キーを読み、リクエストの組み立てと
// レスポンスの分類は adapters に委譲します。
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/time/rate"

	"github.com/shouni/gemini-fashion-kit/pkg/adapters"
	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

// Studio は ImageStudio の Gemini 実装です。
type Studio struct {
	core          adapters.ImageGeneratorCore
	credentials   CredentialSource
	newClient     ClientFactory
	model         string
	validateModel string
	limiter       *rate.Limiter
}

var _ ImageStudio = (*Studio)(nil)

// NewStudio は依存関係を注入して Studio を初期化します。
func NewStudio(core adapters.ImageGeneratorCore, credentials CredentialSource, model string, opts ...Option) (*Studio, error) {
	if core == nil {
		return nil, fmt.Errorf("core (ImageGeneratorCore) is required")
	}
	if credentials == nil {
		return nil, fmt.Errorf("credentials (CredentialSource) is required")
	}
	if model == "" {
		model = DefaultImageModel
	}

	s := &Studio{
		core:          core,
		credentials:   credentials,
		newClient:     NewGenAIClient,
		model:         model,
		validateModel: DefaultValidateModel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// client は保存済みの API キーでクライアントを作成します。キーがなければ ErrMissingCredential です。
func (s *Studio) client(ctx context.Context) (adapters.ContentGenerator, error) {
	key, err := s.credentials.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("APIキーの読み込みに失敗しました: %w", err)
	}
	if strings.TrimSpace(key) == "" {
		return nil, domain.ErrMissingCredential
	}
	return s.newClient(ctx, key)
}

// execute は 1 回分の生成要求を実行する共通処理です。
func (s *Studio) execute(ctx context.Context, req domain.ImageGenerationRequest, label string) (*domain.ImageResponse, error) {
	aiClient, err := s.client(ctx)
	if err != nil {
		return nil, err
	}
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("レートリミッターの待機中にエラーが発生しました: %w", err)
		}
	}

	gen, err := adapters.NewGeminiImageGenerator(s.core, aiClient, s.model)
	if err != nil {
		return nil, err
	}
	resp, err := gen.GenerateImage(ctx, req)
	if err != nil {
		return nil, err
	}
	resp.Label = label
	slog.InfoContext(ctx, "画像を生成しました", "label", label)
	return resp, nil
}

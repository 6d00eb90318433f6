package generator

import (
	"context"

	"github.com/shouni/gemini-fashion-kit/pkg/adapters"
	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

// ImageStudio はビジネスロジック層が利用する統合窓口です。
// どの操作も成功時は画像 1 枚、失敗時はエラー 1 つを返します。
type ImageStudio interface {
	Generate(ctx context.Context, s domain.GenerationSettings) (*domain.ImageResponse, error)
	GenerateFromReferences(ctx context.Context, sel domain.SelectedSet, s domain.GenerationSettings) (*domain.ImageResponse, error)
	Edit(ctx context.Context, imageURI, instruction string, s domain.GenerationSettings) (*domain.ImageResponse, error)
	GenerateConsistent(ctx context.Context, imageURI, newContext string, s domain.GenerationSettings) (*domain.ImageResponse, error)
	ExtractOutfit(ctx context.Context, imageURI string) (*domain.ImageResponse, error)
	EditOutfit(ctx context.Context, imageURI, instruction string) (*domain.ImageResponse, error)
	ExtractBackground(ctx context.Context, imageURI string) (*domain.ImageResponse, error)
	EditBackground(ctx context.Context, imageURI, instruction string) (*domain.ImageResponse, error)
	// ValidateConnection は API キーで軽量なテキスト呼び出しができるかを確認します。
	ValidateConnection(ctx context.Context, apiKey string) error
}

// CredentialSource は呼び出しのたびに API キーを返します。keystore.Store がこれを満たします。
// 未設定の場合は空文字列とエラーなしを返します。
type CredentialSource interface {
	Get(ctx context.Context) (string, error)
}

// ClientFactory は API キーから Gemini クライアントを作成します。
type ClientFactory func(ctx context.Context, apiKey string) (adapters.ContentGenerator, error)

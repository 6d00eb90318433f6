package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/shouni/gemini-fashion-kit/pkg/adapters"
)

// NewGenAIClient は Gemini API バックエンドのクライアントを作成し、Models を返します。
// ClientFactory としてそのまま使えます。
func NewGenAIClient(ctx context.Context, apiKey string) (adapters.ContentGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Geminiクライアントの作成に失敗しました: %w", err)
	}
	return client.Models, nil
}

package adapters

import (
	"context"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"google.golang.org/genai"
)

// mockImageCore は ImageGeneratorCore インターフェースのテスト用モックです。
type mockImageCore struct {
	GeminiImageCore
	parseFunc func(resp *genai.GenerateContentResponse) (string, error)
}

func (m *mockImageCore) ParseToResponse(resp *genai.GenerateContentResponse) (string, error) {
	if m.parseFunc != nil {
		return m.parseFunc(resp)
	}
	return "", nil
}

var _ ImageGeneratorCore = (*mockImageCore)(nil)

// mockAIClient は ContentGenerator のテスト用モックです。
type mockAIClient struct {
	generateFunc func(model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	calls        int
}

func (m *mockAIClient) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(model, contents, config)
	}
	return nil, nil
}

func imageResponse(data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonStop,
			Content:      genai.NewContentFromParts([]*genai.Part{genai.NewPartFromBytes(data, "image/jpeg")}, genai.RoleModel),
		}},
	}
}

func request(refs ...string) domain.ImageGenerationRequest {
	return domain.ImageGenerationRequest{
		Prompt:      "editorial portrait",
		References:  refs,
		AspectRatio: domain.AspectRatioPortrait,
		Resolution:  domain.Resolution4K,
	}
}

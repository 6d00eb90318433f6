package generator

import (
	"context"
	"encoding/base64"
	"testing"

	"google.golang.org/genai"

	"github.com/shouni/gemini-fashion-kit/pkg/adapters"
	"github.com/shouni/gemini-fashion-kit/pkg/catalog"
	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/imgutil"
)

type mockCredentials struct {
	key string
	err error
}

func (m *mockCredentials) Get(context.Context) (string, error) { return m.key, m.err }

// mockAIClient は最後に受け取ったリクエストを記録します。
type mockAIClient struct {
	resp     *genai.GenerateContentResponse
	err      error
	calls    int
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (m *mockAIClient) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.calls++
	m.model, m.contents, m.config = model, contents, config
	return m.resp, m.err
}

// parts は送信されたユーザーコンテンツのパーツです。
func (m *mockAIClient) parts() []*genai.Part {
	if len(m.contents) == 0 {
		return nil
	}
	return m.contents[0].Parts
}

var fakeImage = []byte("generated-image-bytes")

func imageResponse() *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonStop,
			Content:      genai.NewContentFromParts([]*genai.Part{genai.NewPartFromBytes(fakeImage, "image/png")}, genai.RoleModel),
		}},
	}
}

// newTestStudio はモック クライアントを返す Studio を作成します。受け取ったキーは keys に記録します。
func newTestStudio(t *testing.T, key string, ai *mockAIClient, opts ...Option) (*Studio, *[]string) {
	t.Helper()
	var keys []string
	factory := func(_ context.Context, apiKey string) (adapters.ContentGenerator, error) {
		keys = append(keys, apiKey)
		return ai, nil
	}
	opts = append([]Option{WithClientFactory(factory)}, opts...)
	s, err := NewStudio(adapters.NewGeminiImageCore(), &mockCredentials{key: key}, "test-image-model", opts...)
	if err != nil {
		t.Fatalf("NewStudio: %v", err)
	}
	return s, &keys
}

func dataURI(payload string) string {
	return imgutil.EncodeDataURI("image/jpeg", []byte(payload))
}

func ref(payload string) domain.ReferenceImage {
	return domain.NewReferenceImage(dataURI(payload))
}

func inlinePayload(p *genai.Part) string {
	if p == nil || p.InlineData == nil {
		return ""
	}
	return string(p.InlineData.Data)
}

func defaultSettings() domain.GenerationSettings {
	return catalog.DefaultSettings()
}

func wantDataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(fakeImage)
}

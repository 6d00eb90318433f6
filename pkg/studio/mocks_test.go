package studio

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/imgutil"
)

// mockStudio は generator.ImageStudio のテスト用モックです。受け取った引数を記録します。
type mockStudio struct {
	mu      sync.Mutex
	err     error
	sources []string
	instrs  []string
	sel     domain.SelectedSet
	calls   []string
}

func (m *mockStudio) respond(op, source, instr string) (*domain.ImageResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, op)
	m.sources = append(m.sources, source)
	m.instrs = append(m.instrs, instr)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ImageResponse{
		DataURI: imgutil.EncodeDataURI("image/png", []byte(op+"-result")),
		Label:   op + ":" + instr,
	}, nil
}

func (m *mockStudio) Generate(context.Context, domain.GenerationSettings) (*domain.ImageResponse, error) {
	return m.respond("generate", "", "")
}

func (m *mockStudio) GenerateFromReferences(_ context.Context, sel domain.SelectedSet, _ domain.GenerationSettings) (*domain.ImageResponse, error) {
	m.mu.Lock()
	m.sel = sel
	m.mu.Unlock()
	return m.respond("references", "", "")
}

func (m *mockStudio) Edit(_ context.Context, img, instr string, _ domain.GenerationSettings) (*domain.ImageResponse, error) {
	return m.respond("edit", img, instr)
}

func (m *mockStudio) GenerateConsistent(_ context.Context, img, ctxText string, _ domain.GenerationSettings) (*domain.ImageResponse, error) {
	return m.respond("consistent", img, ctxText)
}

func (m *mockStudio) ExtractOutfit(_ context.Context, img string) (*domain.ImageResponse, error) {
	return m.respond("extract-outfit", img, "")
}

func (m *mockStudio) EditOutfit(_ context.Context, img, instr string) (*domain.ImageResponse, error) {
	return m.respond("edit-outfit", img, instr)
}

func (m *mockStudio) ExtractBackground(_ context.Context, img string) (*domain.ImageResponse, error) {
	return m.respond("extract-background", img, "")
}

func (m *mockStudio) EditBackground(_ context.Context, img, instr string) (*domain.ImageResponse, error) {
	return m.respond("edit-background", img, instr)
}

func (m *mockStudio) ValidateConnection(context.Context, string) error { return m.err }

// mockFetcher は "https://" で始まる URL を固定の画像に変換します。
type mockFetcher struct{}

func (mockFetcher) FetchDataURI(_ context.Context, rawURL string) (string, error) {
	if !strings.HasPrefix(rawURL, "https://") {
		return "", errors.New("fetch failed: " + rawURL)
	}
	return imgutil.EncodeDataURI("image/jpeg", []byte(rawURL)), nil
}

// countingFetcher は mockFetcher と同じ変換を行い、呼び出し回数を数えます。
type countingFetcher struct {
	mu    sync.Mutex
	count int
}

func (c *countingFetcher) FetchDataURI(ctx context.Context, rawURL string) (string, error) {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
	return mockFetcher{}.FetchDataURI(ctx, rawURL)
}

func (c *countingFetcher) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func uri(payload string) string {
	return imgutil.EncodeDataURI("image/png", []byte(payload))
}

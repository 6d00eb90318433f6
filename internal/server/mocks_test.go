package server

import (
	"context"
	"testing"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/imgutil"
	"github.com/shouni/gemini-fashion-kit/pkg/keystore"
	"github.com/shouni/gemini-fashion-kit/pkg/studio"
)

// mockStudio は generator.ImageStudio のテスト用モックです。
type mockStudio struct {
	err         error
	validateErr error
	validated   []string
}

func (m *mockStudio) image(label string) (*domain.ImageResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ImageResponse{DataURI: imgutil.EncodeDataURI("image/png", []byte(label)), Label: label}, nil
}

func (m *mockStudio) Generate(context.Context, domain.GenerationSettings) (*domain.ImageResponse, error) {
	return m.image("generated")
}

func (m *mockStudio) GenerateFromReferences(context.Context, domain.SelectedSet, domain.GenerationSettings) (*domain.ImageResponse, error) {
	return m.image("ref-mix")
}

func (m *mockStudio) Edit(_ context.Context, _, instr string, _ domain.GenerationSettings) (*domain.ImageResponse, error) {
	return m.image("수정: " + instr)
}

func (m *mockStudio) GenerateConsistent(_ context.Context, _, next string, _ domain.GenerationSettings) (*domain.ImageResponse, error) {
	return m.image("다음 컷: " + next)
}

func (m *mockStudio) ExtractOutfit(context.Context, string) (*domain.ImageResponse, error) {
	return m.image("outfit")
}

func (m *mockStudio) EditOutfit(context.Context, string, string) (*domain.ImageResponse, error) {
	return m.image("outfit-edit")
}

func (m *mockStudio) ExtractBackground(context.Context, string) (*domain.ImageResponse, error) {
	return m.image("background")
}

func (m *mockStudio) EditBackground(context.Context, string, string) (*domain.ImageResponse, error) {
	return m.image("background-edit")
}

func (m *mockStudio) ValidateConnection(_ context.Context, key string) error {
	m.validated = append(m.validated, key)
	return m.validateErr
}

type fixture struct {
	server *Server
	studio *mockStudio
	creds  *keystore.Store
	sess   *studio.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ms := &mockStudio{}
	sess, err := studio.NewSession(ms, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	creds := keystore.New(keystore.NewMemoryBackend())
	srv, err := New(sess, creds, ms)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &fixture{server: srv, studio: ms, creds: creds, sess: sess}
}

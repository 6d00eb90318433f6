package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/prompts"
)

func TestStudio_Generate(t *testing.T) {
	ai := &mockAIClient{resp: imageResponse()}
	s, _ := newTestStudio(t, "k", ai)
	settings := defaultSettings()
	settings.AspectRatio = domain.AspectRatioPortrait
	settings.Resolution = domain.Resolution4K

	resp, err := s.Generate(context.Background(), settings)
	require.NoError(t, err)
	assert.Equal(t, wantDataURI(), resp.DataURI)
	assert.Equal(t, GenerateLabel(settings), resp.Label)

	parts := ai.parts()
	require.Len(t, parts, 1, "テキストのみ")
	assert.Equal(t, prompts.Build(settings), parts[0].Text)
	assert.Equal(t, "3:4", ai.config.ImageConfig.AspectRatio)
	assert.Equal(t, "4K", ai.config.ImageConfig.ImageSize)
	assert.Len(t, ai.config.SafetySettings, 4)
}

func TestStudio_GenerateFromReferences(t *testing.T) {
	ctx := context.Background()

	t.Run("モデル、衣装、ロケーション、テキストの順に送る", func(t *testing.T) {
		ai := &mockAIClient{resp: imageResponse()}
		s, _ := newTestStudio(t, "k", ai)
		sel := domain.SelectedSet{
			Model:    []domain.ReferenceImage{ref("m1"), ref("m2")},
			Clothing: []domain.ReferenceImage{ref("c1")},
			Location: []domain.ReferenceImage{ref("l1")},
		}
		settings := defaultSettings()

		resp, err := s.GenerateFromReferences(ctx, sel, settings)
		require.NoError(t, err)
		assert.Equal(t, ReferencesLabel(settings), resp.Label)

		parts := ai.parts()
		require.Len(t, parts, 5)
		var got []string
		for _, p := range parts[:4] {
			got = append(got, inlinePayload(p))
		}
		assert.Equal(t, []string{"m1", "m2", "c1", "l1"}, got)
		assert.Equal(t, prompts.References(settings, prompts.ReferenceCounts{Model: 2, Clothing: 1, Location: 1}), parts[4].Text)
	})

	t.Run("衣装テキストだけでも生成できる", func(t *testing.T) {
		ai := &mockAIClient{resp: imageResponse()}
		s, _ := newTestStudio(t, "k", ai)
		settings := defaultSettings()
		settings.ClothingPrompt = "cream knit cardigan"

		_, err := s.GenerateFromReferences(ctx, domain.SelectedSet{}, settings)
		require.NoError(t, err)
		require.Len(t, ai.parts(), 1)
	})

	t.Run("入力が何もなければ NoReferenceSelected", func(t *testing.T) {
		ai := &mockAIClient{resp: imageResponse()}
		s, _ := newTestStudio(t, "k", ai)
		settings := defaultSettings()
		settings.ClothingPrompt = "   "

		_, err := s.GenerateFromReferences(ctx, domain.SelectedSet{}, settings)
		assert.ErrorIs(t, err, domain.ErrNoReferenceSelected)
		assert.Zero(t, ai.calls)
	})

	t.Run("不正な参照画像は InvalidImageFormat で送信しない", func(t *testing.T) {
		ai := &mockAIClient{resp: imageResponse()}
		s, _ := newTestStudio(t, "k", ai)
		sel := domain.SelectedSet{Model: []domain.ReferenceImage{domain.NewReferenceImage("not-a-data-uri")}}

		_, err := s.GenerateFromReferences(ctx, sel, defaultSettings())
		assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
		assert.Zero(t, ai.calls)
	})
}

func TestStudio_EditAndConsistent(t *testing.T) {
	ctx := context.Background()
	settings := defaultSettings()
	settings.AspectRatio = domain.AspectRatioTall
	settings.Resolution = domain.Resolution1K

	t.Run("Edit はユーザー設定の出力形式を使う", func(t *testing.T) {
		ai := &mockAIClient{resp: imageResponse()}
		s, _ := newTestStudio(t, "k", ai)

		resp, err := s.Edit(ctx, dataURI("prev"), "make the coat red", settings)
		require.NoError(t, err)
		assert.Equal(t, "수정: make the coat red", resp.Label)

		parts := ai.parts()
		require.Len(t, parts, 2)
		assert.Equal(t, "prev", inlinePayload(parts[0]))
		assert.Equal(t, prompts.Edit(settings, "make the coat red"), parts[1].Text)
		assert.Equal(t, "9:16", ai.config.ImageConfig.AspectRatio)
		assert.Equal(t, "1K", ai.config.ImageConfig.ImageSize)
	})

	t.Run("GenerateConsistent", func(t *testing.T) {
		ai := &mockAIClient{resp: imageResponse()}
		s, _ := newTestStudio(t, "k", ai)

		resp, err := s.GenerateConsistent(ctx, dataURI("prev"), "walking on the beach", settings)
		require.NoError(t, err)
		assert.Equal(t, "다음 컷: walking on the beach", resp.Label)
		assert.Equal(t, prompts.Consistent(settings, "walking on the beach"), ai.parts()[1].Text)
	})

	t.Run("元画像なし", func(t *testing.T) {
		ai := &mockAIClient{resp: imageResponse()}
		s, _ := newTestStudio(t, "k", ai)
		_, err := s.Edit(ctx, "", "x", settings)
		assert.ErrorIs(t, err, ErrNoSourceImage)
		_, err = s.GenerateConsistent(ctx, " ", "x", settings)
		assert.ErrorIs(t, err, ErrNoSourceImage)
		assert.Zero(t, ai.calls)
	})
}

func TestStudio_ExtractOperations(t *testing.T) {
	ctx := context.Background()
	source := dataURI("model-photo")

	tests := []struct {
		name       string
		run        func(s *Studio) (*domain.ImageResponse, error)
		wantPrompt string
		wantRatio  string
	}{
		{"ExtractOutfit", func(s *Studio) (*domain.ImageResponse, error) { return s.ExtractOutfit(ctx, source) }, prompts.ExtractOutfitPrompt, "1:1"},
		{"EditOutfit", func(s *Studio) (*domain.ImageResponse, error) { return s.EditOutfit(ctx, source, "add a belt") }, prompts.EditOutfit("add a belt"), "1:1"},
		{"ExtractBackground", func(s *Studio) (*domain.ImageResponse, error) { return s.ExtractBackground(ctx, source) }, prompts.ExtractBackgroundPrompt, "16:9"},
		{"EditBackground", func(s *Studio) (*domain.ImageResponse, error) { return s.EditBackground(ctx, source, "sunset") }, prompts.EditBackground("sunset"), "16:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &mockAIClient{resp: imageResponse()}
			s, _ := newTestStudio(t, "k", ai)

			resp, err := tt.run(s)
			require.NoError(t, err)
			assert.Equal(t, wantDataURI(), resp.DataURI)
			assert.Empty(t, resp.Label)

			parts := ai.parts()
			require.Len(t, parts, 2)
			assert.Equal(t, "model-photo", inlinePayload(parts[0]))
			assert.Equal(t, tt.wantPrompt, parts[1].Text)
			assert.Equal(t, tt.wantRatio, ai.config.ImageConfig.AspectRatio)
			assert.Equal(t, "2K", ai.config.ImageConfig.ImageSize)
		})
	}
}

func TestStudio_ClassifiedFailures(t *testing.T) {
	ai := &mockAIClient{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
	}}
	s, _ := newTestStudio(t, "k", ai)

	_, err := s.Generate(context.Background(), defaultSettings())
	assert.ErrorIs(t, err, domain.ErrUnsafeContent)

	ai.resp, ai.err = nil, errors.New("connection reset")
	_, err = s.Generate(context.Background(), defaultSettings())
	require.Error(t, err)
	var genErr *domain.GenerationError
	assert.False(t, errors.As(err, &genErr), "通信エラーは分類しない")
}

func TestStudio_ValidateConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("渡されたキーと検証用モデルで ping を送る", func(t *testing.T) {
		ai := &mockAIClient{}
		s, keys := newTestStudio(t, "stored-key", ai, WithValidateModel("flash"))

		require.NoError(t, s.ValidateConnection(ctx, "candidate-key"))
		assert.Equal(t, []string{"candidate-key"}, *keys)
		assert.Equal(t, "flash", ai.model)
		require.Len(t, ai.contents, 1)
		assert.Equal(t, "ping", ai.contents[0].Parts[0].Text)
		assert.Nil(t, ai.config)
	})

	t.Run("失敗", func(t *testing.T) {
		ai := &mockAIClient{err: errors.New("403 PERMISSION_DENIED")}
		s, _ := newTestStudio(t, "", ai)
		err := s.ValidateConnection(ctx, "bad")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("空のキー", func(t *testing.T) {
		s, keys := newTestStudio(t, "", &mockAIClient{})
		assert.ErrorIs(t, s.ValidateConnection(ctx, ""), domain.ErrMissingCredential)
		assert.Empty(t, *keys)
	})
}

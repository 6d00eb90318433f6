package studio

import (
	"context"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

// Generate は現在の設定で画像を生成し、現在の画像と履歴を更新します。
func (s *Session) Generate(ctx context.Context) (*domain.ImageResponse, error) {
	settings := s.Settings()
	resp, err := s.studio.Generate(ctx, settings)
	if err != nil {
		return nil, err
	}
	s.record(ctx, resp)
	return resp, nil
}

// GenerateFromReferences は選択済みの参照画像で生成します。
func (s *Session) GenerateFromReferences(ctx context.Context) (*domain.ImageResponse, error) {
	s.mu.Lock()
	settings := s.settings.Clone()
	sel := s.pools.Selection()
	s.mu.Unlock()

	resp, err := s.studio.GenerateFromReferences(ctx, sel, settings)
	if err != nil {
		return nil, err
	}
	s.record(ctx, resp)
	return resp, nil
}

// Edit は現在の画像を修正します。
func (s *Session) Edit(ctx context.Context, instruction string) (*domain.ImageResponse, error) {
	img, err := s.currentImage()
	if err != nil {
		return nil, err
	}
	resp, err := s.studio.Edit(ctx, img, instruction, s.Settings())
	if err != nil {
		return nil, err
	}
	s.record(ctx, resp)
	return resp, nil
}

// GenerateConsistent は現在の画像の人物で次のカットを生成します。
func (s *Session) GenerateConsistent(ctx context.Context, newContext string) (*domain.ImageResponse, error) {
	img, err := s.currentImage()
	if err != nil {
		return nil, err
	}
	resp, err := s.studio.GenerateConsistent(ctx, img, newContext, s.Settings())
	if err != nil {
		return nil, err
	}
	s.record(ctx, resp)
	return resp, nil
}

// ExtractOutfit は選択中のモデル画像 1 枚から衣装を抽出します。
// 結果は履歴に残さず、AddExtracted で衣装プールに追加できます。
func (s *Session) ExtractOutfit(ctx context.Context) (*domain.ImageResponse, error) {
	s.mu.Lock()
	selected := s.pools.Model.Selected()
	s.mu.Unlock()

	if len(selected) != 1 {
		return nil, domain.ErrExtractSourceCount
	}
	return s.studio.ExtractOutfit(ctx, selected[0].URL)
}

// EditOutfit は抽出済みの衣装画像を修正します。
func (s *Session) EditOutfit(ctx context.Context, imageURI, instruction string) (*domain.ImageResponse, error) {
	return s.studio.EditOutfit(ctx, imageURI, instruction)
}

// ExtractBackground は source（空なら現在の画像）から背景を抽出します。
func (s *Session) ExtractBackground(ctx context.Context, source string) (*domain.ImageResponse, error) {
	if source == "" {
		img, err := s.currentImage()
		if err != nil {
			return nil, err
		}
		source = img
	}
	return s.studio.ExtractBackground(ctx, source)
}

// EditBackground は抽出済みの背景画像を修正します。
func (s *Session) EditBackground(ctx context.Context, imageURI, instruction string) (*domain.ImageResponse, error) {
	return s.studio.EditBackground(ctx, imageURI, instruction)
}

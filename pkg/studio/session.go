// Package studio は 1 人のユーザーのスタジオ状態（設定・参照プール・現在の画像・履歴）を保持し、
// generator の操作と結び付けます。
package studio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/shouni/gemini-fashion-kit/pkg/catalog"
	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/generator"
)

// ErrNoCurrentImage は編集対象の画像がまだないことを表します。
var ErrNoCurrentImage = errors.New("no generated image to work on")

// URLFetcher は参照画像の URL を data URI に変換します。asset.Fetcher がこれを満たします。
type URLFetcher interface {
	FetchDataURI(ctx context.Context, rawURL string) (string, error)
}

// Session はスタジオの状態です。メソッドは並行に呼び出して構いません。
//
// 生成中はロックを保持しません。同時に走った生成は、後に完了したものが現在の画像になります。
type Session struct {
	studio  generator.ImageStudio
	fetcher URLFetcher

	mu       sync.Mutex
	settings domain.GenerationSettings
	pools    domain.ReferencePools
	current  string
	history  domain.History
}

// NewSession は既定の設定でセッションを作成します。fetcher は nil を許容します（URL 取り込みなし）。
func NewSession(studio generator.ImageStudio, fetcher URLFetcher) (*Session, error) {
	if studio == nil {
		return nil, fmt.Errorf("studio (ImageStudio) is required")
	}
	return &Session{
		studio:   studio,
		fetcher:  fetcher,
		settings: catalog.DefaultSettings(),
	}, nil
}

// Settings は現在の設定のコピーを返します。
func (s *Session) Settings() domain.GenerationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Clone()
}

// ReplaceSettings は設定全体を置き換えます。不変条件を満たさない設定は拒否します。
func (s *Session) ReplaceSettings(next domain.GenerationSettings) error {
	if err := next.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = next.Clone()
	return nil
}

// UpdateSettings は設定のコピーに fn を適用し、検証に通れば反映します。
func (s *Session) UpdateSettings(fn func(*domain.GenerationSettings) error) (domain.GenerationSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings.Clone()
	if err := fn(&next); err != nil {
		return s.settings.Clone(), err
	}
	if err := next.Validate(); err != nil {
		return s.settings.Clone(), err
	}
	s.settings = next
	return next.Clone(), nil
}

// ResizeGrid はカット数を変更します。既存のカット設定はインデックスごとに保持されます。
func (s *Session) ResizeGrid(count int) (domain.GenerationSettings, error) {
	return s.UpdateSettings(func(gs *domain.GenerationSettings) error {
		return catalog.ResizeGrid(gs, count)
	})
}

// SelectProfileSpread は 3 面プロフィールに切り替えます（16:9 / 2K 固定）。
func (s *Session) SelectProfileSpread() domain.GenerationSettings {
	next, _ := s.UpdateSettings(func(gs *domain.GenerationSettings) error {
		gs.SelectProfileSpread()
		return nil
	})
	return next
}

// ResetPosesAndAngles は全カットのポーズとアングルを既定値に戻し、上書き指示を消します。
func (s *Session) ResetPosesAndAngles() domain.GenerationSettings {
	next, _ := s.UpdateSettings(func(gs *domain.GenerationSettings) error {
		catalog.ResetPosesAndAngles(gs)
		return nil
	})
	return next
}

// ResetModel はモデル属性をリセットします。
func (s *Session) ResetModel() domain.GenerationSettings {
	next, _ := s.UpdateSettings(func(gs *domain.GenerationSettings) error {
		catalog.ResetModel(gs)
		return nil
	})
	return next
}

// SelectConcept はカタログの撮影場所を選び、自由入力の場所を消します。
func (s *Session) SelectConcept(concept string) (domain.GenerationSettings, error) {
	return s.UpdateSettings(func(gs *domain.GenerationSettings) error {
		if strings.TrimSpace(concept) == "" {
			return errors.New("concept is required")
		}
		gs.SelectConcept(concept)
		return nil
	})
}

// Current は現在表示中の画像（data URI）です。未生成なら空です。
func (s *Session) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// History は生成履歴を新しい順に返します。
func (s *Session) History() []domain.GeneratedImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// record は生成結果を現在の画像にし、履歴の先頭に追加します。
func (s *Session) record(ctx context.Context, resp *domain.ImageResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = resp.DataURI
	s.history.Prepend(resp.ToHistory())
	slog.DebugContext(ctx, "履歴に追加しました", "label", resp.Label, "history", s.history.Len())
}

func (s *Session) currentImage() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == "" {
		return "", ErrNoCurrentImage
	}
	return s.current, nil
}

package studio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/imgutil"
)

// maxConcurrentUploads は取り込みを同時に行う最大数です。
const maxConcurrentUploads = 4

// References は指定プールの画像を返します。
func (s *Session) References(kind domain.PoolKind) ([]domain.ReferenceImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pool := s.pools.Pool(kind)
	if pool == nil {
		return nil, fmt.Errorf("unknown reference pool: %q", kind)
	}
	return pool.Items(), nil
}

// AddUploads は data URI または URL の画像をプールに取り込みます。
//
// 空き枠を超えた分は取得する前に捨てます。残りの画像は独立に並行処理され、
// 完了した順にプールへ追加されます。失敗した画像があっても他の画像は追加され、
// 最初のエラーが受け付けた画像と一緒に返ります。
func (s *Session) AddUploads(ctx context.Context, kind domain.PoolKind, sources []string) ([]domain.ReferenceImage, error) {
	requested := len(sources)
	s.mu.Lock()
	pool := s.pools.Pool(kind)
	if pool == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("unknown reference pool: %q", kind)
	}
	if remaining := pool.Remaining(); len(sources) > remaining {
		sources = sources[:remaining]
	}
	s.mu.Unlock()

	var (
		accepted []domain.ReferenceImage
		g        errgroup.Group
	)
	g.SetLimit(maxConcurrentUploads)

	for _, src := range sources {
		g.Go(func() error {
			uri, err := s.resolve(ctx, src)
			if err != nil {
				return err
			}
			// 並行する呼び出しで埋まっている場合があるため、追加時にも上限を確認する
			s.mu.Lock()
			defer s.mu.Unlock()
			accepted = append(accepted, s.pools.Pool(kind).Add(domain.NewReferenceImage(uri))...)
			return nil
		})
	}
	err := g.Wait()

	slog.InfoContext(ctx, "参照画像を追加しました", "pool", kind, "requested", requested, "accepted", len(accepted))
	return accepted, err
}

// resolve は取り込み元を data URI にします。
func (s *Session) resolve(ctx context.Context, src string) (string, error) {
	src = strings.TrimSpace(src)
	if strings.HasPrefix(src, "data:") {
		if _, _, err := imgutil.ParseDataURI(src); err != nil {
			return "", domain.ErrInvalidImageFormat
		}
		return src, nil
	}
	if s.fetcher == nil {
		return "", fmt.Errorf("URLからの取り込みは無効です: %s", src)
	}
	return s.fetcher.FetchDataURI(ctx, src)
}

// AddExtracted は抽出結果をプールに追加します。上限に達していれば false を返します。
func (s *Session) AddExtracted(kind domain.PoolKind, dataURI string) (domain.ReferenceImage, bool, error) {
	if _, _, err := imgutil.ParseDataURI(dataURI); err != nil {
		return domain.ReferenceImage{}, false, domain.ErrInvalidImageFormat
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pool := s.pools.Pool(kind)
	if pool == nil {
		return domain.ReferenceImage{}, false, fmt.Errorf("unknown reference pool: %q", kind)
	}
	added := pool.Add(domain.NewReferenceImage(dataURI))
	if len(added) == 0 {
		return domain.ReferenceImage{}, false, nil
	}
	return added[0], true, nil
}

// Toggle は画像の選択状態を反転します。
func (s *Session) Toggle(kind domain.PoolKind, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pool := s.pools.Pool(kind)
	return pool != nil && pool.Toggle(id)
}

// Remove は画像をプールから削除します。
func (s *Session) Remove(kind domain.PoolKind, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pool := s.pools.Pool(kind)
	return pool != nil && pool.Remove(id)
}

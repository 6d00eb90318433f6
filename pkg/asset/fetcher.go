// Package asset はリモートの参照画像（http/https/gs://）を取得し、
// 参照プールに格納できる data URI に変換します。
package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/imgutil"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

const (
	DefaultCacheTTL = 30 * time.Minute
	cacheKeyDataURI = "asset_datauri:"
	schemeGCS       = "gs://"
)

var (
	// ErrNotImage は取得したデータが画像ではなかったことを表します。
	ErrNotImage = errors.New("fetched content is not an image")
	// ErrUnsupportedSource は取得方法のない URL です（gs:// でリーダー未設定など）。
	ErrUnsupportedSource = errors.New("unsupported reference source")
)

// NewCache は Fetcher 用のインメモリキャッシュを作成します。
func NewCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, 2*ttl)
}

// Fetcher は参照画像を取得して data URI に変換します。
type Fetcher struct {
	httpClient HTTPClient
	reader     remoteio.InputReader
	cache      ImageCacher
	expiration time.Duration
	quality    int
	lookup     lookupFunc
}

// NewFetcher は依存関係を注入して Fetcher を初期化します。
// reader が nil の場合 gs:// は扱えません。cache は nil を許容します（キャッシュなし動作）。
func NewFetcher(httpClient HTTPClient, reader remoteio.InputReader, imgCache ImageCacher, cacheTTL time.Duration) (*Fetcher, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &Fetcher{
		httpClient: httpClient,
		reader:     reader,
		cache:      imgCache,
		expiration: cacheTTL,
		quality:    imgutil.DefaultJPEGQuality,
		lookup:     defaultLookup,
	}, nil
}

// FetchDataURI は URL の画像を取得し、可能なら JPEG に圧縮した data URI を返します。
// data URI が渡された場合は検証だけ行いそのまま返します。
func (f *Fetcher) FetchDataURI(ctx context.Context, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if strings.HasPrefix(rawURL, "data:") {
		if _, _, err := imgutil.ParseDataURI(rawURL); err != nil {
			return "", domain.ErrInvalidImageFormat
		}
		return rawURL, nil
	}

	key := cacheKeyDataURI + rawURL
	if f.cache != nil {
		if val, ok := f.cache.Get(key); ok {
			if uri, ok := val.(string); ok {
				return uri, nil
			}
		}
	}

	data, err := f.fetchImageData(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if !imgutil.IsImage(data) {
		return "", fmt.Errorf("%s: %w", rawURL, ErrNotImage)
	}

	uri := imgutil.ToDataURI(data, f.quality)
	if f.cache != nil {
		f.cache.Set(key, uri, f.expiration)
	}
	slog.InfoContext(ctx, "参照画像を取り込みました", "url", rawURL, "bytes", len(data))
	return uri, nil
}

func (f *Fetcher) fetchImageData(ctx context.Context, rawURL string) ([]byte, error) {
	if strings.HasPrefix(rawURL, schemeGCS) {
		if f.reader == nil {
			return nil, fmt.Errorf("%s: %w", rawURL, ErrUnsupportedSource)
		}
		rc, err := f.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("GCSオブジェクトのオープンに失敗しました (%s): %w", rawURL, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if err := checkURL(ctx, rawURL, f.lookup); err != nil {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	data, err := f.httpClient.FetchBytes(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("画像の取得に失敗しました (%s): %w", rawURL, err)
	}
	return data, nil
}

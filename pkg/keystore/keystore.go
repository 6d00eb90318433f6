// Package keystore は API キーを 1 つの固定キーの下に保存します。
// 保存値は base64 による可逆な難読化で、暗号化ではありません。
package keystore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// StorageKey は API キーを保存する固定キーです。
const StorageKey = "k_beauty_studio_api_key_v1"

// ErrNotFound はバックエンドに値が存在しないことを表します。
var ErrNotFound = errors.New("keystore: not found")

// Backend は文字列値を永続化するストレージです。
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store は API キーの保存・取得・削除を提供します。
type Store struct {
	backend Backend
}

// New はバックエンドを指定して Store を作成します。
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Get は保存済みの API キーを返します。未設定の場合は空文字と nil を返します。
// 保存値が壊れている場合も未設定として扱います。
func (s *Store) Get(ctx context.Context) (string, error) {
	stored, err := s.backend.Get(ctx, StorageKey)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("API キーの読み込みに失敗しました: %w", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		slog.WarnContext(ctx, "保存されている API キーを復元できませんでした", "error", err)
		return "", nil
	}
	return string(decoded), nil
}

// Save は API キーを難読化して保存します。空文字（空白のみを含む）は Clear と同じです。
func (s *Store) Save(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return s.Clear(ctx)
	}
	if err := s.backend.Set(ctx, StorageKey, base64.StdEncoding.EncodeToString([]byte(key))); err != nil {
		return fmt.Errorf("API キーの保存に失敗しました: %w", err)
	}
	return nil
}

// Clear は保存済みの API キーを削除します。
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, StorageKey); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("API キーの削除に失敗しました: %w", err)
	}
	return nil
}

// Configured は API キーが設定済みかを返します。
func (s *Store) Configured(ctx context.Context) bool {
	key, err := s.Get(ctx)
	return err == nil && key != ""
}

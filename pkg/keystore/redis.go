package keystore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend は Redis に保存するバックエンドです。サーバーを複数台で動かす場合に使います。
type RedisBackend struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisBackend は既存のクライアントから RedisBackend を作成します。
// prefix はキーの名前空間で、空でもかまいません。
func NewRedisBackend(client redis.UniversalClient, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

// RedisOptions は Redis 接続設定です。
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// ConnectRedis は Redis に接続し、疎通確認を行います。
func ConnectRedis(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	slog.InfoContext(ctx, "Redisに接続します", "addr", opts.Addr, "db", opts.DB)
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("Redisへの接続に失敗しました (%s): %w", opts.Addr, err)
	}
	return rdb, nil
}

func (r *RedisBackend) key(k string) string { return r.prefix + k }

func (r *RedisBackend) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return v, err
}

func (r *RedisBackend) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}

func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const resetCodeKeyPrefix = "pwreset:code:"

// CodeStore menyimpan hash kode reset dengan TTL.
// Key dihapus saat kode berhasil diverifikasi, jadi satu kode hanya
// bisa dipakai sekali.
//
//go:generate mockgen -source=reset_code_store.go -destination=mock/reset_code_store_mock.go -package=mock
type CodeStore interface {
	Save(ctx context.Context, email, codeHash string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

type redisCodeStore struct {
	rdb *redis.Client
}

func NewRedisCodeStore(rdb *redis.Client) CodeStore {
	return &redisCodeStore{rdb: rdb}
}

func (s *redisCodeStore) Save(ctx context.Context, email, codeHash string, ttl time.Duration) error {
	return s.rdb.Set(ctx, resetCodeKeyPrefix+email, codeHash, ttl).Err()
}

func (s *redisCodeStore) Get(ctx context.Context, email string) (string, error) {
	return s.rdb.Get(ctx, resetCodeKeyPrefix+email).Result()
}

func (s *redisCodeStore) Delete(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, resetCodeKeyPrefix+email).Err()
}

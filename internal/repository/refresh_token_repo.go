package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "refresh:"

// RefreshTokenRepository records issued refresh tokens by their jti. A token
// whose record is gone (expired or deleted by an operator) is revoked.
type RefreshTokenRepository interface {
	Save(ctx context.Context, jti string, userID uint, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
}

type redisRefreshTokenRepo struct{ rdb *redis.Client }

func NewRefreshTokenRepository(rdb *redis.Client) RefreshTokenRepository {
	return &redisRefreshTokenRepo{rdb: rdb}
}

func (r *redisRefreshTokenRepo) Save(ctx context.Context, jti string, userID uint, ttl time.Duration) error {
	return r.rdb.Set(ctx, refreshKeyPrefix+jti, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (r *redisRefreshTokenRepo) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := r.rdb.Exists(ctx, refreshKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

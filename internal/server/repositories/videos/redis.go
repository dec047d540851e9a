package videos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/edutube/internal/common"
	"github.com/dmitrijs2005/edutube/internal/server/models"
)

const (
	// DefaultRedisKey names the list holding one JSON record per element.
	DefaultRedisKey = "edutube:videos"

	redisTxRetries = 50
)

// RedisRepository keeps records as JSON strings in a single list. Append
// and Remove run as WATCH/MULTI transactions and are retried when another
// writer touched the list in between.
type RedisRepository struct {
	rdb *redis.Client
	key string
}

func NewRedisRepository(rdb *redis.Client, key string) *RedisRepository {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisRepository{rdb: rdb, key: key}
}

func (r *RedisRepository) List(ctx context.Context) ([]models.UploadedVideo, error) {
	raw, err := r.rdb.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, readError(err)
	}

	list, err := decodeAll(raw)
	if err != nil {
		return nil, readError(err)
	}
	return list, nil
}

func (r *RedisRepository) Get(ctx context.Context, id string) (*models.UploadedVideo, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	i := findIndex(list, id)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	v := list[i]
	return &v, nil
}

func (r *RedisRepository) Append(ctx context.Context, v *models.UploadedVideo) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return r.update(ctx, func(tx *redis.Tx, list []models.UploadedVideo, _ []string) error {
		if err := checkUnique(list, v); err != nil {
			return err
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.RPush(ctx, r.key, data)
			return nil
		})
		return err
	})
}

func (r *RedisRepository) Remove(ctx context.Context, id string) error {
	return r.update(ctx, func(tx *redis.Tx, list []models.UploadedVideo, raw []string) error {
		i := findIndex(list, id)
		if i < 0 {
			return common.ErrNotFound
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.LRem(ctx, r.key, 1, raw[i])
			return nil
		})
		return err
	})
}

func (r *RedisRepository) Close() error {
	return r.rdb.Close()
}

// update watches the list, hands its current content to fn and retries
// when the transaction lost a race.
func (r *RedisRepository) update(ctx context.Context, fn func(tx *redis.Tx, list []models.UploadedVideo, raw []string) error) error {
	txf := func(tx *redis.Tx) error {
		raw, err := tx.LRange(ctx, r.key, 0, -1).Result()
		if err != nil {
			return readError(err)
		}
		list, err := decodeAll(raw)
		if err != nil {
			return readError(err)
		}
		return fn(tx, list, raw)
	}

	for i := 0; i < redisTxRetries; i++ {
		err := r.rdb.Watch(ctx, txf, r.key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("redis: %s still contended after %d attempts", r.key, redisTxRetries)
}

func decodeAll(raw []string) ([]models.UploadedVideo, error) {
	list := make([]models.UploadedVideo, 0, len(raw))
	for _, s := range raw {
		var v models.UploadedVideo
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

package videos

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/edutube/internal/common"
)

func newRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisRepository(rdb, "")
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedisRepository_Contract(t *testing.T) {
	testRepositoryContract(t, func(t *testing.T) Repository {
		r, _ := newRedisRepo(t)
		return r
	})
}

func TestRedisRepository_StoresJSONList(t *testing.T) {
	r, mr := newRedisRepo(t)
	require.NoError(t, r.Append(context.Background(), sampleVideo(1)))

	items, err := mr.List(DefaultRedisKey)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0], `"fileKey":"uploads/1-lecture.mp4"`)
}

func TestRedisRepository_CorruptEntry(t *testing.T) {
	r, mr := newRedisRepo(t)
	_, err := mr.Push(DefaultRedisKey, "{not json")
	require.NoError(t, err)

	_, err = r.List(context.Background())
	assert.ErrorIs(t, err, common.ErrStorageRead)

	assert.ErrorIs(t, r.Remove(context.Background(), "x"), common.ErrStorageRead)
}

func TestRedisRepository_ServerDown(t *testing.T) {
	r, mr := newRedisRepo(t)
	mr.Close()

	_, err := r.List(context.Background())
	assert.ErrorIs(t, err, common.ErrStorageRead)
}

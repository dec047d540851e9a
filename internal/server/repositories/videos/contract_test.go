package videos

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/edutube/internal/common"
	"github.com/dmitrijs2005/edutube/internal/server/models"
)

func sampleVideo(n int) *models.UploadedVideo {
	return &models.UploadedVideo{
		ID:          fmt.Sprintf("id-%d", n),
		Type:        models.UploadedType,
		Title:       fmt.Sprintf("Lecture %d", n),
		Description: "intro",
		PublicURL:   fmt.Sprintf("https://storage.example/videos/uploads/%d-lecture.mp4", n),
		ObjectKey:   fmt.Sprintf("uploads/%d-lecture.mp4", n),
		FileName:    "lecture.mp4",
		ContentType: "video/mp4",
		UploadedAt:  time.Date(2024, 5, 1, 12, 0, n, 123456789, time.UTC),
	}
}

// testRepositoryContract exercises the behaviour every backend shares.
func testRepositoryContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		r := newRepo(t)
		list, err := r.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("append keeps insertion order", func(t *testing.T) {
		r := newRepo(t)
		for i := 1; i <= 3; i++ {
			require.NoError(t, r.Append(ctx, sampleVideo(i)))
		}

		list, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		for i, v := range list {
			assert.Equal(t, *sampleVideo(i+1), v)
		}

		again, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, list, again)
	})

	t.Run("get", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Append(ctx, sampleVideo(1)))

		v, err := r.Get(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, sampleVideo(1), v)

		_, err = r.Get(ctx, "missing")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		r := newRepo(t)
		for i := 1; i <= 3; i++ {
			require.NoError(t, r.Append(ctx, sampleVideo(i)))
		}

		require.NoError(t, r.Remove(ctx, "id-2"))

		list, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "id-1", list[0].ID)
		assert.Equal(t, "id-3", list[1].ID)

		assert.ErrorIs(t, r.Remove(ctx, "id-2"), common.ErrNotFound)
		_, err = r.Get(ctx, "id-2")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("remove unknown", func(t *testing.T) {
		r := newRepo(t)
		assert.ErrorIs(t, r.Remove(ctx, "nope"), common.ErrNotFound)
	})

	t.Run("duplicates rejected", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Append(ctx, sampleVideo(1)))

		dupID := sampleVideo(2)
		dupID.ID = "id-1"
		assert.ErrorIs(t, r.Append(ctx, dupID), ErrDuplicate)

		dupKey := sampleVideo(3)
		dupKey.ObjectKey = sampleVideo(1).ObjectKey
		assert.ErrorIs(t, r.Append(ctx, dupKey), ErrDuplicate)

		list, err := r.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("concurrent append and remove", func(t *testing.T) {
		r := newRepo(t)
		for i := 0; i < 10; i++ {
			require.NoError(t, r.Append(ctx, sampleVideo(i)))
		}

		var wg sync.WaitGroup
		for i := 10; i < 30; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, r.Append(ctx, sampleVideo(i)))
			}()
		}
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, r.Remove(ctx, fmt.Sprintf("id-%d", i)))
			}()
		}
		wg.Wait()

		list, err := r.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 20)
		seen := map[string]bool{}
		for _, v := range list {
			assert.False(t, seen[v.ID], "duplicate %s", v.ID)
			seen[v.ID] = true
		}
	})
}

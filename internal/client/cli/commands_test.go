package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/edutube/internal/client/api"
	"github.com/dmitrijs2005/edutube/internal/client/models"
)

func TestHome(t *testing.T) {
	fa := &fakeAPI{home: &models.HomeSections{
		WhatIs:  []models.SearchResult{{ID: "v1", Kind: models.KindVideo, Title: "What is a monad", ChannelName: "FP", PublishedLabel: "Published on 1/8/2024"}},
		HowTo:   []models.SearchResult{},
		Courses: []models.SearchResult{{ID: "PL1", Kind: models.KindPlaylist, Title: "CS50"}},
	}}
	app, out, _ := newTestApp(fa, "")

	require.NoError(t, app.Home(context.Background()))

	s := out.String()
	assert.Contains(t, s, "== What is ...? ==")
	assert.Contains(t, s, " 1. [video] What is a monad")
	assert.Contains(t, s, "FP · Published on 1/8/2024")
	assert.Contains(t, s, "https://www.youtube.com/watch?v=v1")
	assert.Contains(t, s, "== How to ... ==\n  (nothing found)")
	assert.Contains(t, s, "https://www.youtube.com/playlist?list=PL1")
}

func TestSearch_PrintsResults(t *testing.T) {
	fa := &fakeAPI{searchRes: []models.SearchResult{{ID: "a", Kind: models.KindVideo, Title: "Go"}}}
	app, out, _ := newTestApp(fa, "")

	require.NoError(t, app.Search(context.Background(), "golang"))
	assert.Equal(t, "golang", fa.searchQuery)
	assert.Contains(t, out.String(), `== Results for "golang" ==`)
	assert.Contains(t, out.String(), "[video] Go")
}

func TestSearch_Error(t *testing.T) {
	fa := &fakeAPI{err: &api.Error{StatusCode: 502, Message: "Could not fetch search results"}}
	app, _, _ := newTestApp(fa, "")

	err := app.Search(context.Background(), "x")
	assert.ErrorContains(t, err, "Could not fetch search results")
}

func TestList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		app, out, _ := newTestApp(&fakeAPI{}, "")
		require.NoError(t, app.List(context.Background()))
		assert.Contains(t, out.String(), "No uploaded videos yet")
	})

	t.Run("entries", func(t *testing.T) {
		fa := &fakeAPI{videos: []models.UploadedVideo{{
			ID: "id1", Title: "Lecture", Description: "week 1", FileName: "lecture.mp4",
			PublicURL: "http://s3/b/uploads/id1-lecture.mp4", UploadedAt: time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC),
		}}}
		app, out, _ := newTestApp(fa, "")
		require.NoError(t, app.List(context.Background()))

		s := out.String()
		assert.Contains(t, s, "id1  Lecture  (lecture.mp4, ")
		assert.Contains(t, s, "    week 1\n")
		assert.Contains(t, s, "http://s3/b/uploads/id1-lecture.mp4")
	})
}

func TestDelete(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		fa := &fakeAPI{}
		app, out, _ := newTestApp(fa, "")
		require.NoError(t, app.Delete(context.Background(), "id1"))
		assert.Equal(t, "id1", fa.deletedID)
		assert.Contains(t, out.String(), "Video deleted")
	})

	t.Run("not found", func(t *testing.T) {
		fa := &fakeAPI{err: &api.Error{StatusCode: 404, Message: "Video not found"}}
		app, _, _ := newTestApp(fa, "")
		err := app.Delete(context.Background(), "nope")
		assert.EqualError(t, err, "no video with id nope")
	})

	t.Run("other error", func(t *testing.T) {
		boom := errors.New("boom")
		app, _, _ := newTestApp(&fakeAPI{err: boom}, "")
		assert.ErrorIs(t, app.Delete(context.Background(), "x"), boom)
	})
}

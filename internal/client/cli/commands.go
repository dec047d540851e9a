package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/edutube/internal/client/api"
	"github.com/dmitrijs2005/edutube/internal/client/models"
)

func (a *App) Home(ctx context.Context) error {
	hs, err := a.api.HomeSections(ctx)
	if err != nil {
		return err
	}

	a.printResults("What is ...?", hs.WhatIs)
	a.printResults("How to ...", hs.HowTo)
	a.printResults("Free courses", hs.Courses)
	return nil
}

func (a *App) Search(ctx context.Context, query string) error {
	res, err := a.api.Search(ctx, query)
	if err != nil {
		return err
	}

	a.printResults(fmt.Sprintf("Results for %q", query), res)
	return nil
}

func (a *App) List(ctx context.Context) error {
	list, err := a.api.ListVideos(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No uploaded videos yet")
		return nil
	}

	for _, v := range list {
		fmt.Fprintf(a.out, "%s  %s  (%s, %s)\n", v.ID, v.Title, v.FileName, v.UploadedAt.Local().Format("2006-01-02 15:04"))
		if v.Description != "" {
			fmt.Fprintf(a.out, "    %s\n", v.Description)
		}
		fmt.Fprintf(a.out, "    %s\n", v.PublicURL)
	}
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.api.DeleteVideo(ctx, id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("no video with id %s", id)
		}
		return err
	}

	fmt.Fprintln(a.out, "Video deleted")
	return nil
}

func (a *App) printResults(heading string, items []models.SearchResult) {
	fmt.Fprintf(a.out, "== %s ==\n", heading)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "  (nothing found)")
		return
	}

	for i, it := range items {
		fmt.Fprintf(a.out, "%2d. [%s] %s\n", i+1, it.Kind, it.Title)
		line := it.ChannelName
		if it.PublishedLabel != "" {
			if line != "" {
				line += " · "
			}
			line += it.PublishedLabel
		}
		if line != "" {
			fmt.Fprintf(a.out, "    %s\n", line)
		}
		fmt.Fprintf(a.out, "    %s\n", watchURL(it))
	}
}

func watchURL(it models.SearchResult) string {
	if it.Kind == models.KindPlaylist {
		return "https://www.youtube.com/playlist?list=" + it.ID
	}
	return "https://www.youtube.com/watch?v=" + it.ID
}

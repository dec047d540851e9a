package youtube

import (
	"time"

	"github.com/dmitrijs2005/edutube/internal/server/models"
)

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID struct {
		Kind       string `json:"kind"`
		VideoID    string `json:"videoId"`
		PlaylistID string `json:"playlistId"`
	} `json:"id"`
	Snippet struct {
		PublishedAt  string `json:"publishedAt"`
		Title        string `json:"title"`
		ChannelTitle string `json:"channelTitle"`
		Thumbnails   struct {
			Default thumbnail `json:"default"`
			Medium  thumbnail `json:"medium"`
			High    thumbnail `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
}

type thumbnail struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// results maps provider items in order. Anything that is not a video is
// reported as a playlist, even when the provider sent no playlist id.
func (r *searchResponse) results() []models.SearchResult {
	out := make([]models.SearchResult, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, item.toResult())
	}
	return out
}

func (i *searchItem) toResult() models.SearchResult {
	res := models.SearchResult{
		Title:          i.Snippet.Title,
		ChannelName:    i.Snippet.ChannelTitle,
		ThumbnailURL:   i.thumbnailURL(),
		PublishedLabel: publishedLabel(i.Snippet.PublishedAt),
	}

	if i.ID.Kind == videoIDKind {
		res.Kind = models.KindVideo
		res.ID = i.ID.VideoID
	} else {
		res.Kind = models.KindPlaylist
		res.ID = i.ID.PlaylistID
	}

	return res
}

func (i *searchItem) thumbnailURL() string {
	t := i.Snippet.Thumbnails
	switch {
	case t.High.URL != "":
		return t.High.URL
	case t.Medium.URL != "":
		return t.Medium.URL
	default:
		return t.Default.URL
	}
}

// publishedLabel renders "Published on M/D/YYYY". Unparseable timestamps
// produce an empty label.
func publishedLabel(publishedAt string) string {
	ts, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return ""
	}
	return "Published on " + ts.UTC().Format(publishedLayout)
}

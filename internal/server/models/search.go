// Package models defines the records exchanged by the edutube services.
package models

// Kind is the type of a search result.
type Kind string

const (
	KindVideo    Kind = "video"
	KindPlaylist Kind = "playlist"
)

// SearchResult is one item returned by the search provider, normalized for
// display. It is never persisted.
type SearchResult struct {
	ID             string `json:"id"`
	Kind           Kind   `json:"type"`
	Title          string `json:"title"`
	ChannelName    string `json:"channel"`
	ThumbnailURL   string `json:"thumbnailUrl"`
	PublishedLabel string `json:"uploaded"`
}

// HomeSections holds the three curated homepage sections.
type HomeSections struct {
	WhatIs  []SearchResult `json:"whatIs"`
	HowTo   []SearchResult `json:"howTo"`
	Courses []SearchResult `json:"courses"`
}

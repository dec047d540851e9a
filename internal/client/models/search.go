// Package models defines the JSON payloads the edutube CLI exchanges with
// the server API.
package models

// Kind is the type of a search result as reported by the API.
type Kind string

const (
	KindVideo    Kind = "video"
	KindPlaylist Kind = "playlist"
)

// SearchResult is one search hit as rendered by the server.
type SearchResult struct {
	ID             string `json:"id"`
	Kind           Kind   `json:"type"`
	Title          string `json:"title"`
	ChannelName    string `json:"channel"`
	ThumbnailURL   string `json:"thumbnailUrl"`
	PublishedLabel string `json:"uploaded"`
}

// HomeSections is the body of the home endpoint.
type HomeSections struct {
	WhatIs  []SearchResult `json:"whatIs"`
	HowTo   []SearchResult `json:"howTo"`
	Courses []SearchResult `json:"courses"`
}

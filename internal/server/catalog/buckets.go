package catalog

import "github.com/dmitrijs2005/edutube/internal/server/models"

// Bucket is a named set of canned phrases feeding one homepage section.
type Bucket struct {
	Name    string
	Phrases []string
	Kind    models.Kind
}

var (
	WhatIs = Bucket{
		Name: "whatIs",
		Kind: models.KindVideo,
		Phrases: []string{
			"what is computer science engineering",
			"what is artificial intelligence explained",
			"what is programming for beginners",
			"what is coding",
			"what are data structures",
			"what are algorithms",
			"what is machine learning",
			"what is cloud computing",
		},
	}

	HowTo = Bucket{
		Name: "howTo",
		Kind: models.KindVideo,
		Phrases: []string{
			"how to get good career opportunities in IT",
			"how to score 9+ CGPA in engineering",
			"how to use AI for studies",
			"how to prepare for technical interviews",
			"how to build a strong resume for tech jobs",
			"study tips for engineering students",
			"how to learn coding fast",
			"how to manage time in college",
		},
	}

	FreeCourses = Bucket{
		Name: "courses",
		Kind: models.KindPlaylist,
		Phrases: []string{
			"free html full course",
			"free css full course",
			"free c programming full course",
			"free python full course for beginners",
			"free javascript full course",
			"free data structures and algorithms course",
			"free machine learning course",
			"free java full course",
		},
	}
)

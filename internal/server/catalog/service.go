// Package catalog implements the aggregation service: ad-hoc search and the
// three curated homepage sections, both backed by the search provider.
package catalog

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/edutube/internal/common"
	"github.com/dmitrijs2005/edutube/internal/logging"
	"github.com/dmitrijs2005/edutube/internal/server/models"
	"github.com/dmitrijs2005/edutube/internal/server/youtube"
)

const (
	SearchLimit      = 20
	SectionPhrases   = 6
	SectionFetchSize = 30
	SectionSize      = 6
	PhraseSeparator  = " | "
)

// Searcher is the search provider the service depends on.
type Searcher interface {
	Search(ctx context.Context, q youtube.Query) ([]models.SearchResult, error)
}

type Service struct {
	provider Searcher
	logger   logging.Logger

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

type Option func(*Service)

// WithRand replaces the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rnd = r }
}

func NewService(provider Searcher, logger logging.Logger, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		logger:   logger.With("module", "catalog"),
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Search returns up to SearchLimit videos for a free-text query, in
// provider order. A blank query is rejected before any network call.
func (s *Service) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, common.InvalidRequest("Search query is required")
	}

	res, err := s.provider.Search(ctx, youtube.Query{
		Text:       query,
		Kind:       models.KindVideo,
		MaxResults: SearchLimit,
	})
	if err != nil {
		return nil, err
	}

	if len(res) > SearchLimit {
		res = res[:SearchLimit]
	}
	return res, nil
}

// HomeSections fetches the three buckets concurrently. Any failing bucket
// fails the whole call; partial sections are never returned.
func (s *Service) HomeSections(ctx context.Context) (*models.HomeSections, error) {
	buckets := []Bucket{WhatIs, HowTo, FreeCourses}
	queries := make([]string, len(buckets))
	for i, b := range buckets {
		queries[i] = s.combinedQuery(b)
	}

	results := make([][]models.SearchResult, len(buckets))

	g, gctx := errgroup.WithContext(ctx)
	for i, b := range buckets {
		g.Go(func() error {
			res, err := s.provider.Search(gctx, youtube.Query{
				Text:       queries[i],
				Kind:       b.Kind,
				MaxResults: SectionFetchSize,
			})
			if err != nil {
				s.logger.Warn(gctx, "home section fetch failed", "bucket", b.Name, "error", err)
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range results {
		results[i] = s.pick(results[i], SectionSize)
	}

	return &models.HomeSections{
		WhatIs:  results[0],
		HowTo:   results[1],
		Courses: results[2],
	}, nil
}

// combinedQuery picks SectionPhrases random phrases of b and joins them
// into one provider query.
func (s *Service) combinedQuery(b Bucket) string {
	phrases := append([]string(nil), b.Phrases...)

	s.mu.Lock()
	Shuffle(s.rnd, phrases)
	s.mu.Unlock()

	if len(phrases) > SectionPhrases {
		phrases = phrases[:SectionPhrases]
	}
	return strings.Join(phrases, PhraseSeparator)
}

func (s *Service) pick(items []models.SearchResult, n int) []models.SearchResult {
	out := append(make([]models.SearchResult, 0, len(items)), items...)

	s.mu.Lock()
	Shuffle(s.rnd, out)
	s.mu.Unlock()

	if len(out) > n {
		out = out[:n]
	}
	return out
}

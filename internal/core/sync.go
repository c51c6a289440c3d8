// Package core orchestrates cache-backed fetching and keyword matching.
package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inovacc/findstar/internal/model"
	"github.com/inovacc/findstar/internal/store"
)

// PageFetcher yields one page of starred repositories at a time.
type PageFetcher interface {
	FetchPage(ctx context.Context, user string, page int) ([]model.Star, int, error)
}

// Syncer reconciles the local cache with the remote listing.
type Syncer struct {
	store   store.Store
	fetcher PageFetcher
	logger  *slog.Logger
}

// NewSyncer wires a store and a fetcher together. A nil logger falls back to
// slog.Default.
func NewSyncer(st store.Store, fetcher PageFetcher, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Syncer{store: st, fetcher: fetcher, logger: logger}
}

// Stars returns the user's starred repositories, from cache when possible.
// With refresh set, the cache entry is rebuilt from the listing endpoint
// wholesale. An existing entry that reads back empty is treated as corrupt
// or stale and refetched rather than returned as zero results.
//
// A listing failure aborts the run before any cache write.
func (s *Syncer) Stars(ctx context.Context, user string, refresh bool) ([]model.Star, error) {
	if refresh {
		if s.store.Exists(user) {
			if err := s.store.Clear(user); err != nil {
				return nil, err
			}
		} else if err := s.store.Create(user); err != nil {
			return nil, err
		}

		return s.fetchAndWrite(ctx, user)
	}

	if s.store.Exists(user) {
		stars, err := s.store.Read(user)
		if err != nil {
			return nil, err
		}

		if len(stars) > 0 {
			return stars, nil
		}

		s.logger.Warn("cache entry empty or unreadable, refetching", slog.String("user", user))
	} else if err := s.store.Create(user); err != nil {
		return nil, err
	}

	return s.fetchAndWrite(ctx, user)
}

// fetchAndWrite pulls every page in order, persists the result, and reads it
// back so the returned view is exactly what later runs will load. Any
// serialization asymmetry surfaces here instead of on the next run.
func (s *Syncer) fetchAndWrite(ctx context.Context, user string) ([]model.Star, error) {
	stars, err := s.fetchAll(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.store.Write(user, stars); err != nil {
		return nil, fmt.Errorf("failed to write cache for %s: %w", user, err)
	}

	return s.store.Read(user)
}

// fetchAll walks pages 1..last sequentially, concatenating records in page
// order. The last-page index is taken from page 1's response only.
func (s *Syncer) fetchAll(ctx context.Context, user string) ([]model.Star, error) {
	s.logger.Info("fetching page", slog.Int("page", 1))

	stars, lastPage, err := s.fetcher.FetchPage(ctx, user, 1)
	if err != nil {
		return nil, err
	}

	for page := 2; page <= lastPage; page++ {
		s.logger.Info("fetching page", slog.Int("page", page), slog.Int("last", lastPage))

		next, _, err := s.fetcher.FetchPage(ctx, user, page)
		if err != nil {
			return nil, err
		}

		stars = append(stars, next...)
	}

	s.logger.Info("fetch complete", slog.Int("stars", len(stars)))

	return stars, nil
}

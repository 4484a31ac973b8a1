package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/hannahenterprises/constructly-server/internal/domain"
	"github.com/hannahenterprises/constructly-server/internal/repository"
	"github.com/hannahenterprises/constructly-server/internal/session"
)

type ProjectService struct {
	repo  repository.ProjectRepository
	cache *session.Store
	seeds []domain.Project
}

func NewProjectService(repo repository.ProjectRepository, cache *session.Store) *ProjectService {
	return &ProjectService{repo: repo, cache: cache, seeds: session.SeedProjects()}
}

// Create opens the lifecycle: a customer requesting a quote.
func (s *ProjectService) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Builder = strings.TrimSpace(p.Builder)
	if p.Title == "" {
		return domain.Project{}, domain.ErrMissingTitle
	}
	if p.Builder == "" {
		return domain.Project{}, domain.ErrMissingBuilder
	}

	if p.Status == "" {
		p.Status = domain.ProjectStatusDraft
	}
	if p.Progress < 0 || p.Progress > 1 {
		p.Progress = 0
	}
	p.LastUpdate = "Just now"
	p.IsHired = false
	if p.ProgressPhotos == nil {
		p.ProgressPhotos = []string{}
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		slog.Warn("project durable write failed, keeping session copy", "title", p.Title, "err", err)
		p.ID = s.cache.MintID()
		s.cache.AddProject(p)
	}
	return p, nil
}

func (s *ProjectService) List(ctx context.Context) []domain.Project {
	durable, err := s.repo.List(ctx)
	if err != nil {
		slog.Warn("project durable read failed, serving seeds and session", "err", err)
		return append(append([]domain.Project(nil), s.seeds...), s.cache.Projects()...)
	}

	merged := append(durable, s.cache.Projects()...)
	if len(merged) == 0 {
		return append([]domain.Project(nil), s.seeds...)
	}
	return merged
}

// Hire marks the project as contracted. The record may live in the durable
// store, in the session cache, or transiently in both; every copy that
// exists gets the mutation so the transition stays visible wherever the
// record is read from next. Re-hiring overwrites the terms, last write wins.
func (s *ProjectService) Hire(ctx context.Context, id domain.EntityID, terms domain.ContractTerms) (*domain.Project, error) {
	var hired *domain.Project
	staged := false

	p, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		p.ApplyHire(terms)
		if err := s.repo.Save(ctx, p); err != nil {
			slog.Warn("hire durable save failed, staging session copy", "project", id.String(), "err", err)
			staged = true
		}
		hired = p
	case !errors.Is(err, repository.ErrNotFound):
		// store unreachable; the cache may still hold the record
		slog.Warn("hire durable lookup failed", "project", id.String(), "err", err)
	}

	cached, ok := s.cache.UpdateProject(id, func(cp *domain.Project) { cp.ApplyHire(terms) })
	if ok && hired == nil {
		hired = cached
	}
	if staged && !ok {
		// the record was read durably but the write-back was lost; keep the
		// mutated copy in the cache so merged reads still show the hire
		s.cache.AddProject(*hired)
	}

	if hired == nil {
		return nil, domain.ErrProjectNotFound
	}
	return hired, nil
}

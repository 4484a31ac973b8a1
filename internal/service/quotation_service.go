package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/hannahenterprises/constructly-server/internal/domain"
	"github.com/hannahenterprises/constructly-server/internal/repository"
	"github.com/hannahenterprises/constructly-server/internal/session"
)

type QuotationService struct {
	repo  repository.QuotationRepository
	cache *session.Store
}

func NewQuotationService(repo repository.QuotationRepository, cache *session.Store) *QuotationService {
	return &QuotationService{repo: repo, cache: cache}
}

// Submit records a builder's quotation against a project. Referential
// integrity is the caller's: both references must be present but are not
// resolved here, since either side may be a session-only record.
func (s *QuotationService) Submit(ctx context.Context, q domain.Quotation) (domain.Quotation, error) {
	if q.ProjectID.IsZero() {
		return domain.Quotation{}, domain.ErrMissingProjectRef
	}
	if q.BuilderID.IsZero() {
		return domain.Quotation{}, domain.ErrMissingBuilderRef
	}
	if q.EstimatedCost <= 0 {
		return domain.Quotation{}, domain.ErrInvalidCost
	}
	q.Timeline = strings.TrimSpace(q.Timeline)
	if q.Timeline == "" {
		return domain.Quotation{}, domain.ErrMissingTimeline
	}

	q.Status = domain.QuotationStatusSent
	q.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, &q); err != nil {
		slog.Warn("quotation durable write failed, keeping session copy", "project", q.ProjectID.String(), "err", err)
		q.ID = s.cache.MintID()
		s.cache.AddQuotation(q)
	}
	return q, nil
}

func (s *QuotationService) ListByProject(ctx context.Context, projectID domain.EntityID) []domain.Quotation {
	durable, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		slog.Warn("quotation durable read failed, serving session", "project", projectID.String(), "err", err)
		return s.cache.QuotationsByProject(projectID)
	}
	return append(durable, s.cache.QuotationsByProject(projectID)...)
}

package repository

import (
	"context"

	"github.com/hannahenterprises/constructly-server/internal/domain"
)

type QuotationRepository interface {
	Create(ctx context.Context, q *domain.Quotation) error
	ListByProject(ctx context.Context, projectID domain.EntityID) ([]domain.Quotation, error)
}

package repository

import (
	"context"

	"github.com/hannahenterprises/constructly-server/internal/domain"
)

type ProjectRepository interface {
	// Create inserts the project and stamps its durable id onto p.ID.
	Create(ctx context.Context, p *domain.Project) error
	// List returns durable projects newest-first.
	List(ctx context.Context) ([]domain.Project, error)
	// GetByID resolves only durable ids; session-local ids yield ErrNotFound
	// without touching the store.
	GetByID(ctx context.Context, id domain.EntityID) (*domain.Project, error)
	Save(ctx context.Context, p *domain.Project) error
}

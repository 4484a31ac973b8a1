package repository

import (
	"context"

	"github.com/hannahenterprises/constructly-server/internal/domain"
)

type BuilderRepository interface {
	// Create inserts the builder and stamps its durable id onto b.ID.
	Create(ctx context.Context, b *domain.Builder) error
	List(ctx context.Context) ([]domain.Builder, error)
}

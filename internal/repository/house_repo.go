package repository

import (
	"context"

	"github.com/hannahenterprises/constructly-server/internal/domain"
)

type HouseRepository interface {
	Create(ctx context.Context, h *domain.House) error
	List(ctx context.Context) ([]domain.House, error)
}

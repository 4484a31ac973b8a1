package postgres

import (
	"context"

	"github.com/hannahenterprises/constructly-server/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BuilderRepository struct {
	db *pgxpool.Pool
}

func NewBuilderRepository(db *pgxpool.Pool) *BuilderRepository {
	return &BuilderRepository{db: db}
}

func (r *BuilderRepository) Create(ctx context.Context, b *domain.Builder) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var id string
	err := r.db.QueryRow(ctx, `
		INSERT INTO builders (name, owner_name, rating, expertise, location, phone, portfolio, verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, b.Name, b.OwnerName, b.Rating, b.Expertise, b.Location, b.Phone, b.Portfolio, b.Verified).Scan(&id)
	if err != nil {
		return err
	}
	b.ID = domain.DurableID(id)
	return nil
}

func (r *BuilderRepository) List(ctx context.Context) ([]domain.Builder, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, owner_name, rating, expertise, location, phone, portfolio, verified
		FROM builders
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Builder
	for rows.Next() {
		var b domain.Builder
		var id string
		if err := rows.Scan(&id, &b.Name, &b.OwnerName, &b.Rating, &b.Expertise, &b.Location, &b.Phone, &b.Portfolio, &b.Verified); err != nil {
			return nil, err
		}
		b.ID = domain.DurableID(id)
		out = append(out, b)
	}
	return out, rows.Err()
}

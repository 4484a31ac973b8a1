package postgres

import (
	"context"

	"github.com/hannahenterprises/constructly-server/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type QuotationRepository struct {
	db *pgxpool.Pool
}

func NewQuotationRepository(db *pgxpool.Pool) *QuotationRepository {
	return &QuotationRepository{db: db}
}

func (r *QuotationRepository) Create(ctx context.Context, q *domain.Quotation) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var id string
	err := r.db.QueryRow(ctx, `
		INSERT INTO quotations (project_id, builder_id, estimated_cost, timeline, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, q.ProjectID.String(), q.BuilderID.String(), q.EstimatedCost, q.Timeline, q.Notes, q.Status).
		Scan(&id, &q.CreatedAt)
	if err != nil {
		return err
	}
	q.ID = domain.DurableID(id)
	return nil
}

func (r *QuotationRepository) ListByProject(ctx context.Context, projectID domain.EntityID) ([]domain.Quotation, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, project_id, builder_id, estimated_cost, timeline, notes, status, created_at
		FROM quotations
		WHERE project_id = $1
		ORDER BY created_at ASC, id ASC
	`, projectID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Quotation
	for rows.Next() {
		var q domain.Quotation
		var id, projectRef, builderRef string
		if err := rows.Scan(&id, &projectRef, &builderRef, &q.EstimatedCost, &q.Timeline, &q.Notes, &q.Status, &q.CreatedAt); err != nil {
			return nil, err
		}
		q.ID = domain.DurableID(id)
		q.ProjectID = domain.ParseID(projectRef)
		q.BuilderID = domain.ParseID(builderRef)
		out = append(out, q)
	}
	return out, rows.Err()
}

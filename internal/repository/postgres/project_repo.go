package postgres

import (
	"context"
	"errors"

	"github.com/hannahenterprises/constructly-server/internal/domain"
	"github.com/hannahenterprises/constructly-server/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, title, builder, category, location, progress, status,
	last_update, is_hired, COALESCE(contract_amount, 0), start_date,
	estimated_end_date, progress_photos, created_at`

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var id string
	err := r.db.QueryRow(ctx, `
		INSERT INTO projects (title, builder, category, location, progress, status, last_update, is_hired, progress_photos)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, p.Title, p.Builder, p.Category, p.Location, p.Progress, p.Status, p.LastUpdate, p.IsHired, p.ProgressPhotos).
		Scan(&id, &p.CreatedAt)
	if err != nil {
		return err
	}
	p.ID = domain.DurableID(id)
	return nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) GetByID(ctx context.Context, id domain.EntityID) (*domain.Project, error) {
	// Session-local ids never reach the store; skip the round-trip.
	if id.Durable() == "" {
		return nil, repository.ErrNotFound
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE id = $1
	`, id.Durable())
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) Save(ctx context.Context, p *domain.Project) error {
	if p.ID.Durable() == "" {
		return repository.ErrNotFound
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var amount any
	if p.ContractAmount != 0 {
		amount = p.ContractAmount
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE projects
		SET title=$2, builder=$3, category=$4, location=$5, progress=$6, status=$7,
		    last_update=$8, is_hired=$9, contract_amount=$10, start_date=$11,
		    estimated_end_date=$12, progress_photos=$13
		WHERE id=$1
	`, p.ID.Durable(), p.Title, p.Builder, p.Category, p.Location, p.Progress, p.Status,
		p.LastUpdate, p.IsHired, amount, p.StartDate, p.EstimatedEndDate, p.ProgressPhotos)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var id string
	if err := row.Scan(&id, &p.Title, &p.Builder, &p.Category, &p.Location, &p.Progress,
		&p.Status, &p.LastUpdate, &p.IsHired, &p.ContractAmount, &p.StartDate,
		&p.EstimatedEndDate, &p.ProgressPhotos, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.ID = domain.DurableID(id)
	return &p, nil
}

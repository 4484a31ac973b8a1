package postgres

import (
	"context"

	"github.com/hannahenterprises/constructly-server/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HouseRepository struct {
	db *pgxpool.Pool
}

func NewHouseRepository(db *pgxpool.Pool) *HouseRepository {
	return &HouseRepository{db: db}
}

func (r *HouseRepository) Create(ctx context.Context, h *domain.House) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var id string
	err := r.db.QueryRow(ctx, `
		INSERT INTO houses (title, price, type, description, location, images, seller_phone, seller_name, is_sold)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, h.Title, h.Price, h.Type, h.Description, h.Location, h.Images, h.SellerPhone, h.SellerName, h.IsSold).
		Scan(&id, &h.CreatedAt)
	if err != nil {
		return err
	}
	h.ID = domain.DurableID(id)
	return nil
}

func (r *HouseRepository) List(ctx context.Context) ([]domain.House, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, title, price, type, description, location, images, seller_phone, seller_name, is_sold, created_at
		FROM houses
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.House
	for rows.Next() {
		var h domain.House
		var id string
		if err := rows.Scan(&id, &h.Title, &h.Price, &h.Type, &h.Description, &h.Location, &h.Images, &h.SellerPhone, &h.SellerName, &h.IsSold, &h.CreatedAt); err != nil {
			return nil, err
		}
		h.ID = domain.DurableID(id)
		out = append(out, h)
	}
	return out, rows.Err()
}

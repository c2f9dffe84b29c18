package repository

import (
	"context"
	"time"

	"github.com/business-directory-api/internal/database"
	"github.com/business-directory-api/internal/models"
	"github.com/lib/pq"
)

// productRepo is the concrete implementation of ProductRepository
type productRepo struct {
	db *database.DB
}

// NewProductRepo creates a new product repository
func NewProductRepo(db *database.DB) ProductRepository {
	return &productRepo{db: db}
}

// BatchInsert inserts multiple products using PostgreSQL COPY for efficiency
func (r *productRepo) BatchInsert(ctx context.Context, products []*models.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("profile_products",
		"id", "profile_id", "name", "description", "details", "price",
		"image_url", "position", "created_at",
	))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	now := time.Now()
	inserted := 0

	for _, product := range products {
		_, err := stmt.ExecContext(ctx,
			product.ID, product.ProfileID, product.Name, product.Description,
			product.Details, product.Price, product.ImageURL, product.Position, now,
		)
		if err != nil {
			continue
		}
		inserted++
	}

	// Execute the COPY
	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return inserted, nil
}

// CountByProfile returns the number of products linked to a profile
func (r *productRepo) CountByProfile(ctx context.Context, profileID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM profile_products WHERE profile_id = $1", profileID,
	).Scan(&count)
	return count, err
}

// Count returns the total number of products
func (r *productRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profile_products").Scan(&count)
	return count, err
}

// StreamAll streams all products for export (memory efficient)
func (r *productRepo) StreamAll(ctx context.Context, callback func(*models.Product) error) error {
	query := `
		SELECT id, profile_id, name, description, details, price, image_url,
			position, created_at
		FROM profile_products ORDER BY profile_id, position
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID, &product.ProfileID, &product.Name, &product.Description,
			&product.Details, &product.Price, &product.ImageURL, &product.Position,
			&product.CreatedAt,
		)
		if err != nil {
			return err
		}

		if err := callback(&product); err != nil {
			return err
		}
	}

	return rows.Err()
}

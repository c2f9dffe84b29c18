package repository

import (
	"context"
	"database/sql"

	"github.com/business-directory-api/internal/database"
	"github.com/business-directory-api/internal/models"
	"github.com/lib/pq"
)

// runRepo is the concrete implementation of RunRepository
type runRepo struct {
	db *database.DB
}

// NewRunRepo creates a new import run repository
func NewRunRepo(db *database.DB) RunRepository {
	return &runRepo{db: db}
}

// Create inserts a new import run record
func (r *runRepo) Create(ctx context.Context, run *models.ImportRun) error {
	query := `
		INSERT INTO import_runs (id, upload_mode, tier, total_rows, profiles_created,
			products_created, gallery_created, auth_created, auth_failed, error_count,
			duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.Mode, run.Tier, run.TotalRows, run.ProfilesCreated,
		run.ProductsCreated, run.GalleryCreated, run.AuthCreated, run.AuthFailed,
		run.ErrorCount, run.DurationMs, run.CreatedAt,
	)
	return err
}

// GetByID retrieves an import run by ID
func (r *runRepo) GetByID(ctx context.Context, id string) (*models.ImportRun, error) {
	query := `
		SELECT id, upload_mode, tier, total_rows, profiles_created, products_created,
			gallery_created, auth_created, auth_failed, error_count, duration_ms, created_at
		FROM import_runs WHERE id = $1
	`
	var run models.ImportRun
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID, &run.Mode, &run.Tier, &run.TotalRows, &run.ProfilesCreated,
		&run.ProductsCreated, &run.GalleryCreated, &run.AuthCreated, &run.AuthFailed,
		&run.ErrorCount, &run.DurationMs, &run.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &run, nil
}

// AddErrors adds row errors for a run using the COPY protocol
func (r *runRepo) AddErrors(ctx context.Context, runID string, rowErrors []models.RowError) error {
	if len(rowErrors) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("import_run_errors",
		"run_id", "row_number", "step", "reason",
	))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range rowErrors {
		stmt.ExecContext(ctx, runID, e.Row, e.Step, e.Reason)
	}

	// Flush the COPY buffer
	if _, err := stmt.ExecContext(ctx); err != nil {
		return err
	}

	return tx.Commit()
}

// GetErrors retrieves row errors for a run, ordered by original row index
func (r *runRepo) GetErrors(ctx context.Context, runID string, limit int) ([]models.RowError, error) {
	query := `SELECT row_number, step, reason FROM import_run_errors WHERE run_id = $1 ORDER BY row_number`
	if limit > 0 {
		query += " LIMIT $2"
	}

	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query, runID, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query, runID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rowErrors []models.RowError
	for rows.Next() {
		var e models.RowError
		if err := rows.Scan(&e.Row, &e.Step, &e.Reason); err != nil {
			continue
		}
		rowErrors = append(rowErrors, e)
	}

	return rowErrors, rows.Err()
}

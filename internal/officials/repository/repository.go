// Package repository provides data access for the politicians table.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"civitas_backend/internal/officials"
	"civitas_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads official identities and upserts derived summaries.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new Repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetByID returns one official by internal id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (officials.Official, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, external_id, branch, state, party, name
		FROM politicians
		WHERE id = $1
	`, id)

	var off officials.Official
	if err := row.Scan(&off.ID, &off.ExternalID, &off.Branch, &off.State, &off.Party, &off.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return officials.Official{}, apperr.NotFound("official not found")
		}
		return officials.Official{}, err
	}

	return off, nil
}

// List returns every tracked official.
func (r *Repository) List(ctx context.Context) ([]officials.Official, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, external_id, branch, state, party, name
		FROM politicians
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]officials.Official, 0)
	for rows.Next() {
		var off officials.Official
		if err := rows.Scan(&off.ID, &off.ExternalID, &off.Branch, &off.State, &off.Party, &off.Name); err != nil {
			return nil, err
		}
		results = append(results, off)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return results, nil
}

// UpdateExpenses overwrites only the stored expense summary.
func (r *Repository) UpdateExpenses(ctx context.Context, id uuid.UUID, expenses interface{}, updatedAt time.Time) error {
	expensesJSON, err := json.Marshal(expenses)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		UPDATE politicians
		SET expenses = $2, data_updated_at = $3
		WHERE id = $1
	`, id, expensesJSON, updatedAt)
	return err
}

// UpdateStaff overwrites only the stored staff summary.
func (r *Repository) UpdateStaff(ctx context.Context, id uuid.UUID, staff interface{}, updatedAt time.Time) error {
	staffJSON, err := json.Marshal(staff)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		UPDATE politicians
		SET staff = $2, data_updated_at = $3
		WHERE id = $1
	`, id, staffJSON, updatedAt)
	return err
}

// UpdateSummaries overwrites the official's stored expense and staff
// summaries plus the update timestamp. No history is retained.
func (r *Repository) UpdateSummaries(ctx context.Context, id uuid.UUID, expenses interface{}, staff interface{}, updatedAt time.Time) error {
	expensesJSON, err := json.Marshal(expenses)
	if err != nil {
		return err
	}
	staffJSON, err := json.Marshal(staff)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		UPDATE politicians
		SET expenses = $2, staff = $3, data_updated_at = $4
		WHERE id = $1
	`, id, expensesJSON, staffJSON, updatedAt)
	return err
}

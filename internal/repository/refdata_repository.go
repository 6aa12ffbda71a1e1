package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-class-api/internal/models"
)

// RefDataRepository reads the fixed day and period reference sets.
type RefDataRepository struct {
	db *sqlx.DB
}

// NewRefDataRepository constructs the repository.
func NewRefDataRepository(db *sqlx.DB) *RefDataRepository {
	return &RefDataRepository{db: db}
}

func (r *RefDataRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// ListDays returns the active days ordered by identity. Pass the grid
// generator's transaction so the read shares its snapshot.
func (r *RefDataRepository) ListDays(ctx context.Context, exec sqlx.ExtContext) ([]models.Day, error) {
	const query = `SELECT id, name FROM days ORDER BY id ASC`
	var days []models.Day
	if err := sqlx.SelectContext(ctx, r.exec(exec), &days, query); err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	return days, nil
}

// ListPeriods returns the periods ordered by start time.
func (r *RefDataRepository) ListPeriods(ctx context.Context, exec sqlx.ExtContext) ([]models.Period, error) {
	const query = `SELECT id, start_time, end_time FROM periods ORDER BY start_time ASC`
	var periods []models.Period
	if err := sqlx.SelectContext(ctx, r.exec(exec), &periods, query); err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	return periods, nil
}

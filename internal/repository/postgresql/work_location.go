package postgresql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/domain/worklocation"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/database"
)

type workLocationRepositoryImpl struct {
	db *database.DB
}

func NewWorkLocationRepository(db *database.DB) worklocation.WorkLocationRepository {
	return &workLocationRepositoryImpl{db: db}
}

// Upsert implements worklocation.WorkLocationRepository. A re-declaration for
// the same (user, date) replaces the previous value.
func (r *workLocationRepositoryImpl) Upsert(ctx context.Context, userID string, date time.Time, isOnsite bool) (worklocation.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_locations (id, user_id, date, is_onsite)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date)
		DO UPDATE SET is_onsite = EXCLUDED.is_onsite, updated_at = NOW()
		RETURNING id, user_id, date, is_onsite, created_at, updated_at
	`

	var loc worklocation.WorkLocation
	err := q.QueryRow(ctx, query, uuid.NewString(), userID, date, isOnsite).Scan(
		&loc.ID,
		&loc.UserID,
		&loc.Date,
		&loc.IsOnsite,
		&loc.CreatedAt,
		&loc.UpdatedAt,
	)
	if err != nil {
		return worklocation.WorkLocation{}, err
	}
	return loc, nil
}

// GetByUserRange implements worklocation.WorkLocationRepository.
func (r *workLocationRepositoryImpl) GetByUserRange(ctx context.Context, userID string, dr holiday.DateRange) ([]worklocation.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, is_onsite, created_at, updated_at
		FROM work_locations
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWorkLocations(rows)
}

// GetAllInRange implements worklocation.WorkLocationRepository.
func (r *workLocationRepositoryImpl) GetAllInRange(ctx context.Context, dr holiday.DateRange) ([]worklocation.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, is_onsite, created_at, updated_at
		FROM work_locations
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, user_id
	`

	rows, err := q.Query(ctx, query, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWorkLocations(rows)
}

func collectWorkLocations(rows pgx.Rows) ([]worklocation.WorkLocation, error) {
	var records []worklocation.WorkLocation
	for rows.Next() {
		var loc worklocation.WorkLocation
		if err := rows.Scan(&loc.ID, &loc.UserID, &loc.Date, &loc.IsOnsite, &loc.CreatedAt, &loc.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, loc)
	}
	return records, rows.Err()
}

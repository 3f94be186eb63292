package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository. The (user_id, date) unique
// constraint is the authoritative defense against concurrent duplicate
// inserts; callers pre-check with Exists only as an optimization.
func (r *holidayRepositoryImpl) Create(ctx context.Context, userID string, date time.Time) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, user_id, date)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, date, created_at
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, uuid.NewString(), userID, date).Scan(
		&h.ID,
		&h.UserID,
		&h.Date,
		&h.CreatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, err
	}
	return h, nil
}

// Exists implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Exists(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM holidays WHERE user_id = $1 AND date = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, date).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, user_id, date, created_at FROM holidays WHERE id = $1`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, id).Scan(&h.ID, &h.UserID, &h.Date, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, err
	}
	return h, nil
}

// GetByUserRange implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByUserRange(ctx context.Context, userID string, dr holiday.DateRange) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, created_at
		FROM holidays
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// GetAllInRange implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetAllInRange(ctx context.Context, dr holiday.DateRange) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, created_at
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, user_id
	`

	rows, err := q.Query(ctx, query, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func collectHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	var records []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.UserID, &h.Date, &h.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, h)
	}
	return records, rows.Err()
}

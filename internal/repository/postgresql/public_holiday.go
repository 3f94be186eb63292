package postgresql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/database"
)

type publicHolidayRepositoryImpl struct {
	db *database.DB
}

func NewPublicHolidayRepository(db *database.DB) holiday.PublicHolidayRepository {
	return &publicHolidayRepositoryImpl{db: db}
}

// Create implements holiday.PublicHolidayRepository. The date column is
// unique: one public holiday per calendar day.
func (r *publicHolidayRepositoryImpl) Create(ctx context.Context, date time.Time, name string) (holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (id, date, name)
		VALUES ($1, $2, $3)
		RETURNING id, date, name, created_at, updated_at
	`

	var ph holiday.PublicHoliday
	err := q.QueryRow(ctx, query, uuid.NewString(), date, name).Scan(
		&ph.ID,
		&ph.Date,
		&ph.Name,
		&ph.CreatedAt,
		&ph.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return holiday.PublicHoliday{}, holiday.ErrPublicHolidayExists
		}
		return holiday.PublicHoliday{}, err
	}
	return ph, nil
}

// GetByRange implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) GetByRange(ctx context.Context, dr holiday.DateRange) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, created_at, updated_at
		FROM public_holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPublicHolidays(rows)
}

// GetByMonth implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) GetByMonth(ctx context.Context, year, month int) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, created_at, updated_at
		FROM public_holidays
		WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPublicHolidays(rows)
}

// Delete implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM public_holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrPublicHolidayNotFound
	}
	return nil
}

func collectPublicHolidays(rows pgx.Rows) ([]holiday.PublicHoliday, error) {
	var records []holiday.PublicHoliday
	for rows.Next() {
		var ph holiday.PublicHoliday
		if err := rows.Scan(&ph.ID, &ph.Date, &ph.Name, &ph.CreatedAt, &ph.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, ph)
	}
	return records, rows.Err()
}

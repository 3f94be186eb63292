package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/domain/timesheet"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, e timesheet.Entry) (timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheet_entries (id, user_id, date, hours, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, date, hours, note, created_at, updated_at
	`

	var created timesheet.Entry
	err := q.QueryRow(ctx, query, uuid.NewString(), e.UserID, e.Date, e.Hours, e.Note).Scan(
		&created.ID,
		&created.UserID,
		&created.Date,
		&created.Hours,
		&created.Note,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return timesheet.Entry{}, err
	}
	return created, nil
}

// GetByUserRange implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByUserRange(ctx context.Context, userID string, dr holiday.DateRange) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, hours, note, created_at, updated_at
		FROM timesheet_entries
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, created_at
	`

	rows, err := q.Query(ctx, query, userID, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var e timesheet.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Hours, &e.Note, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// MonthlyWorkedHours implements timesheet.TimesheetRepository. COALESCE keeps
// a month without entries at zero instead of NULL.
func (r *timesheetRepositoryImpl) MonthlyWorkedHours(ctx context.Context, userID string, year, month int) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours), 0)
		FROM timesheet_entries
		WHERE user_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
	`

	var total float64
	if err := q.QueryRow(ctx, query, userID, year, month).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Delete implements timesheet.TimesheetRepository. Scoped by user so nobody
// deletes another user's entry by guessing ids.
func (r *timesheetRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM timesheet_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}
	return nil
}

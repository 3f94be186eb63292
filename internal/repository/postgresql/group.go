package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/worktrack/worktrack-backend-go/internal/domain/user"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/database"
)

type groupRepositoryImpl struct {
	db *database.DB
}

func NewGroupRepository(db *database.DB) user.GroupRepository {
	return &groupRepositoryImpl{db: db}
}

// GetByID implements user.GroupRepository.
func (r *groupRepositoryImpl) GetByID(ctx context.Context, id int) (user.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name FROM groups WHERE id = $1`

	var g user.Group
	if err := q.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Group{}, user.ErrGroupNotFound
		}
		return user.Group{}, err
	}
	return g, nil
}

// List implements user.GroupRepository.
func (r *groupRepositoryImpl) List(ctx context.Context) ([]user.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name FROM groups ORDER BY name, id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []user.Group
	for rows.Next() {
		var g user.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Create implements user.GroupRepository.
func (r *groupRepositoryImpl) Create(ctx context.Context, name string) (user.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO groups (name) VALUES ($1) RETURNING id, name`

	var g user.Group
	if err := q.QueryRow(ctx, query, name).Scan(&g.ID, &g.Name); err != nil {
		return user.Group{}, err
	}
	return g, nil
}

package repositories

import (
	"context"
	"database/sql"

	intdb "umrah/internal/db"
	"umrah/internal/domain/models"
)

// ActivityRepository is append-only: there is no update or delete.
type ActivityRepository struct {
	DB *sql.DB
}

func (r ActivityRepository) db() *sql.DB { return pick(r.DB) }

func (r ActivityRepository) Create(ctx context.Context, userID int64, action string) error {
	_, err := intdb.Insert(ctx, r.db(), "insert activity",
		`INSERT INTO activity_log (user_id, action) VALUES (?, ?)`, userID, action)
	return err
}

// List returns the newest entries first; limit <= 0 means all.
func (r ActivityRepository) List(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	out := []models.ActivityEntry{}
	q := `SELECT id, user_id, action, timestamp FROM activity_log ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	err := intdb.Select(ctx, r.db(), &out, q, args...)
	return out, err
}

package repositories

import (
	"context"
	"database/sql"

	intdb "umrah/internal/db"
	"umrah/internal/domain"
	"umrah/internal/domain/models"
)

type SupportRepository struct {
	DB *sql.DB
}

func (r SupportRepository) db() *sql.DB { return pick(r.DB) }

func (r SupportRepository) Create(ctx context.Context, userID int64, issue string) (int64, error) {
	return intdb.Insert(ctx, r.db(), "insert support request",
		`INSERT INTO support_requests (user_id, issue) VALUES (?, ?)`, userID, issue)
}

func (r SupportRepository) GetByID(ctx context.Context, id int64) (models.SupportRequest, error) {
	var s models.SupportRequest
	err := intdb.Get(ctx, r.db(), &s, "support request",
		`SELECT id, user_id, issue, status, created_at FROM support_requests WHERE id=? LIMIT 1`, id)
	return s, err
}

func (r SupportRepository) ListAll(ctx context.Context) ([]models.SupportRequest, error) {
	out := []models.SupportRequest{}
	err := intdb.Select(ctx, r.db(), &out,
		`SELECT id, user_id, issue, status, created_at FROM support_requests ORDER BY id`)
	return out, err
}

func (r SupportRepository) ListByUser(ctx context.Context, userID int64) ([]models.SupportRequest, error) {
	out := []models.SupportRequest{}
	err := intdb.Select(ctx, r.db(), &out,
		`SELECT id, user_id, issue, status, created_at FROM support_requests WHERE user_id=? ORDER BY id`, userID)
	return out, err
}

func (r SupportRepository) CountOpen(ctx context.Context) (int, error) {
	return intdb.Count(ctx, r.db(), `SELECT COUNT(*) FROM support_requests WHERE status=?`, string(domain.SupportPending))
}

// CompareAndSetStatus behaves like BookingRepository.CompareAndSetStatus.
func (r SupportRepository) CompareAndSetStatus(ctx context.Context, id int64, from, to domain.SupportStatus) (bool, error) {
	res, err := r.db().ExecContext(ctx, `UPDATE support_requests SET status=? WHERE id=? AND status=?`, string(to), id, string(from))
	if err != nil {
		return false, intdb.Classify("update support status", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.StoreError{Op: "update support status", Err: err}
	}
	return n > 0, nil
}

func (r SupportRepository) Delete(ctx context.Context, id int64) error {
	return intdb.DeleteByID(ctx, r.db(), domain.KindSupportRequests, id)
}

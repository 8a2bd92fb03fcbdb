package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "umrah/internal/db"
	"umrah/internal/domain"
	"umrah/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB { return pick(r.DB) }

// Create inserts a booking; status is left to the column default (Pending).
func (r BookingRepository) Create(ctx context.Context, in models.BookingInput) (int64, error) {
	return insertBooking(ctx, r.db(), in)
}

// CreateWithFiles inserts the booking and its document rows in one transaction.
func (r BookingRepository) CreateWithFiles(ctx context.Context, in models.BookingInput, paths []string) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.StoreError{Op: "create booking", Err: fmt.Errorf("db tidak tersedia")}
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, intdb.Classify("begin booking tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	id, err := insertBooking(ctx, tx, in)
	if err != nil {
		return 0, err
	}
	for _, p := range paths {
		if _, err := insertBookingFile(ctx, tx, id, p); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, intdb.Classify("commit booking tx", err)
	}
	return id, nil
}

func insertBooking(ctx context.Context, q intdb.Execer, in models.BookingInput) (int64, error) {
	return intdb.Insert(ctx, q, "insert booking", `
		INSERT INTO bookings (user_id, package_id, travel_date, payment_method, bus_id)
		VALUES (?, ?, ?, ?, ?)`,
		in.UserID, in.PackageID, in.TravelDate, in.PaymentMethod, intdb.NullIfZero(in.BusID))
}

func (r BookingRepository) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	var b models.Booking
	err := intdb.Get(ctx, r.db(), &b, "booking", `
		SELECT id, user_id, package_id, bus_id, `+dateCol("travel_date", "travel_date")+`,
		       payment_method, status, created_at
		FROM bookings WHERE id=? LIMIT 1`, id)
	return b, err
}

// ListAll is the admin view: bookings joined with user, package, bus, trip and guide.
func (r BookingRepository) ListAll(ctx context.Context) ([]models.BookingOverview, error) {
	out := []models.BookingOverview{}
	err := intdb.Select(ctx, r.db(), &out, `
		SELECT b.id, b.user_id, u.name AS user_name, p.name AS package_name,
		       t.id AS trip_id, `+dateCol("t.trip_date", "trip_date")+`,
		       `+dateCol("b.travel_date", "travel_date")+`,
		       b.payment_method, b.status,
		       COALESCE(bu.bus_number, '') AS bus_number, COALESCE(g.name, '') AS guide_name
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN packages p ON b.package_id = p.id
		LEFT JOIN buses bu ON b.bus_id = bu.id
		LEFT JOIN trips t ON bu.trip_id = t.id
		LEFT JOIN guides g ON bu.guide_id = g.id
		ORDER BY b.id`)
	return out, err
}

func (r BookingRepository) ListByUser(ctx context.Context, userID int64) ([]models.UserBooking, error) {
	out := []models.UserBooking{}
	err := intdb.Select(ctx, r.db(), &out, `
		SELECT b.id, p.name AS package, `+dateCol("b.travel_date", "travel_date")+`,
		       b.status, b.payment_method, COALESCE(bu.bus_number, '') AS bus_number
		FROM bookings b
		JOIN packages p ON b.package_id = p.id
		LEFT JOIN buses bu ON b.bus_id = bu.id
		WHERE b.user_id = ?
		ORDER BY b.id`, userID)
	return out, err
}

func (r BookingRepository) Count(ctx context.Context) (int, error) {
	return intdb.Count(ctx, r.db(), `SELECT COUNT(*) FROM bookings`)
}

// CompareAndSetStatus moves the booking to `to` only while it is still in `from`.
// ok is false when no row matched (missing id or status changed meanwhile).
func (r BookingRepository) CompareAndSetStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error) {
	res, err := r.db().ExecContext(ctx, `UPDATE bookings SET status=? WHERE id=? AND status=?`, string(to), id, string(from))
	if err != nil {
		return false, intdb.Classify("update booking status", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.StoreError{Op: "update booking status", Err: err}
	}
	return n > 0, nil
}

// ForceStatus overwrites the status unconditionally.
func (r BookingRepository) ForceStatus(ctx context.Context, id int64, to domain.BookingStatus) error {
	res, err := r.db().ExecContext(ctx, `UPDATE bookings SET status=? WHERE id=?`, string(to), id)
	if err != nil {
		return intdb.Classify("force booking status", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func (r BookingRepository) Delete(ctx context.Context, id int64) error {
	return intdb.DeleteByID(ctx, r.db(), domain.KindBookings, id)
}

// Voucher loads everything printed on the booking voucher.
func (r BookingRepository) Voucher(ctx context.Context, id int64) (models.BookingVoucher, error) {
	var v models.BookingVoucher
	err := intdb.Get(ctx, r.db(), &v, "booking", `
		SELECT b.id, b.user_id, u.name AS user_name, u.passport_number,
		       p.name AS package_name, p.price, p.duration_days, p.hotel, p.transport,
		       `+dateCol("b.travel_date", "travel_date")+`, b.payment_method, b.status,
		       COALESCE(bu.bus_number, '') AS bus_number, COALESCE(g.name, '') AS guide_name
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN packages p ON b.package_id = p.id
		LEFT JOIN buses bu ON b.bus_id = bu.id
		LEFT JOIN guides g ON bu.guide_id = g.id
		WHERE b.id = ? LIMIT 1`, id)
	return v, err
}

type BookingFileRepository struct {
	DB *sql.DB
}

func (r BookingFileRepository) db() *sql.DB { return pick(r.DB) }

// AttachToOpen records a document pointer (the bytes are already on disk) in
// the same statement that checks the booking is not Cancelled. ok is false
// when the booking is missing or was cancelled meanwhile.
func (r BookingFileRepository) AttachToOpen(ctx context.Context, bookingID int64, path string) (id int64, ok bool, err error) {
	db := r.db()
	if db == nil {
		return 0, false, domain.StoreError{Op: "insert booking file", Err: fmt.Errorf("db tidak tersedia")}
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO booking_files (booking_id, file_path)
		SELECT id, ? FROM bookings WHERE id=? AND status<>?`,
		path, bookingID, string(domain.BookingCancelled))
	if err != nil {
		return 0, false, intdb.Classify("insert booking file", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, false, domain.StoreError{Op: "insert booking file", Err: err}
	}
	if n == 0 {
		return 0, false, nil
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, false, domain.StoreError{Op: "insert booking file", Err: err}
	}
	return id, true, nil
}

func insertBookingFile(ctx context.Context, q intdb.Execer, bookingID int64, path string) (int64, error) {
	return intdb.Insert(ctx, q, "insert booking file",
		`INSERT INTO booking_files (booking_id, file_path) VALUES (?, ?)`, bookingID, path)
}

func (r BookingFileRepository) ListByBooking(ctx context.Context, bookingID int64) ([]models.BookingFile, error) {
	out := []models.BookingFile{}
	err := intdb.Select(ctx, r.db(), &out,
		`SELECT id, booking_id, file_path, uploaded_at FROM booking_files WHERE booking_id=? ORDER BY id`, bookingID)
	return out, err
}

func (r BookingFileRepository) List(ctx context.Context) ([]models.BookingFile, error) {
	out := []models.BookingFile{}
	err := intdb.Select(ctx, r.db(), &out, `SELECT id, booking_id, file_path, uploaded_at FROM booking_files ORDER BY id`)
	return out, err
}

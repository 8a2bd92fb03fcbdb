package services

import (
	"database/sql"
	"testing"
	"time"

	"umrah/internal/domain"
	"umrah/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var (
	adminRC     = domain.RequestContext{UserID: 1, Role: domain.RoleAdmin, Name: "Admin"}
	travellerRC = domain.RequestContext{UserID: 7, Role: domain.RoleTraveller, Name: "Aisyah"}
	fixedNow    = time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func activityFor(db *sql.DB) ActivityService {
	return ActivityService{Repo: repositories.ActivityRepository{DB: db}}
}

func expectActivity(mock sqlmock.Sqlmock, userID int64, action string) {
	mock.ExpectExec("INSERT INTO activity_log").
		WithArgs(userID, action).
		WillReturnResult(sqlmock.NewResult(1, 1))
}

var bookingCols = []string{"id", "user_id", "package_id", "bus_id", "travel_date", "payment_method", "status", "created_at"}

func expectBooking(mock sqlmock.Sqlmock, id, userID int64, status domain.BookingStatus) {
	mock.ExpectQuery("FROM bookings WHERE id=").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(id, userID, 5, nil, "2026-04-10", "Credit Card", string(status), fixedNow))
}

func met(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

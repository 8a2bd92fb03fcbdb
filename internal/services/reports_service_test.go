package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/xuri/excelize/v2"
)

func TestOverviewCountsAndUpcomingWindow(t *testing.T) {
	db, mock := newMock(t)
	svc := ReportsService{
		Trips:      repositories.TripRepository{DB: db},
		Travellers: repositories.TravellerRepository{DB: db},
		Bookings:   repositories.BookingRepository{DB: db},
		Support:    repositories.SupportRepository{DB: db},
		Now:        func() time.Time { return fixedNow },
	}

	count := func(table string, n int) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ` + table).
			WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(n))
	}
	count("trips", 4)
	count("travellers", 12)
	count("bookings", 30)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM support_requests WHERE status=`).
		WithArgs("Pending").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))
	mock.ExpectQuery("WHERE t.trip_date BETWEEN").
		WithArgs("2026-03-01", "2026-04-30").
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "trip_date", "price", "hotel_id", "package_name", "hotel_name"}).
			AddRow(2, 5, "2026-04-10", "2100.00", 3, "Deluxe", "Hilton Makkah"))

	out, err := svc.Overview(context.Background(), adminRC)
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	if out.Trips != 4 || out.Travellers != 12 || out.Bookings != 30 || out.OpenTickets != 2 {
		t.Fatalf("unexpected counts %+v", out)
	}
	if len(out.UpcomingTrips) != 1 || out.UpcomingTrips[0].HotelName != "Hilton Makkah" {
		t.Fatalf("unexpected upcoming trips %+v", out.UpcomingTrips)
	}
	met(t, mock)

	if _, err := svc.Overview(context.Background(), travellerRC); !domain.IsForbidden(err) {
		t.Fatalf("expected Forbidden, got %v", err)
	}
}

func TestWorkbookOfWritesHeaderAndRows(t *testing.T) {
	tbl := models.TableOf("bookings", []models.UserBooking{
		{ID: 11, Package: "Deluxe", TravelDate: "2026-04-10", Status: domain.BookingConfirmed, PaymentMethod: "Cash"},
	})
	data, err := WorkbookOf(tbl)
	if err != nil {
		t.Fatalf("WorkbookOf error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("bookings")
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(rows) != 2 || rows[0][1] != "package" || rows[1][1] != "Deluxe" || rows[1][3] != "Confirmed" {
		t.Fatalf("unexpected sheet %v", rows)
	}
}

func TestVoucherPDF(t *testing.T) {
	svc := DocsService{Now: func() time.Time { return fixedNow }}
	pdf, name, err := svc.Voucher(models.BookingVoucher{ID: 3, UserName: "Umar Faruq", PackageName: "Deluxe", Price: 2000, Status: domain.BookingConfirmed})
	if err != nil {
		t.Fatalf("Voucher error: %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") || name != "VOUCHER_3_Umar_Faruq.pdf" {
		t.Fatalf("unexpected output %q", name)
	}
}

func TestActivityRecordSwallowsStoreErrors(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO activity_log").WillReturnError(errors.New("disk full"))

	activityFor(db).Record(context.Background(), 7, "Logged in")
	met(t, mock)
}

func TestActivityListIsAdminOnly(t *testing.T) {
	db, mock := newMock(t)
	svc := activityFor(db)

	if _, err := svc.List(context.Background(), travellerRC, 10); !domain.IsForbidden(err) {
		t.Fatalf("expected Forbidden for traveller, got %v", err)
	}
	if _, err := svc.List(context.Background(), adminRC, -1); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for negative limit, got %v", err)
	}

	mock.ExpectQuery(`FROM activity_log ORDER BY id DESC LIMIT \?`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "action", "timestamp"}).
			AddRow(9, 1, "Confirmed booking 11", fixedNow).
			AddRow(8, 7, "Created booking 11", fixedNow))

	list, err := svc.List(context.Background(), adminRC, 2)
	if err != nil || len(list) != 2 || list[0].ID != 9 {
		t.Fatalf("List = %+v, %v", list, err)
	}
	met(t, mock)
}

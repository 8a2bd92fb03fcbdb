package models

import (
	"testing"
	"time"

	"umrah/internal/domain"
)

func TestPackageUpdateFieldsOnlySetColumns(t *testing.T) {
	price := 999.0
	fs := PackageUpdate{Price: &price}.Fields()
	if len(fs) != 1 || fs[0].Column != "price" || fs[0].Value != 999.0 {
		t.Fatalf("unexpected fields: %+v", fs)
	}
	if len(PackageUpdate{}.Fields()) != 0 {
		t.Fatalf("empty update should yield no fields")
	}
}

func TestTripUpdateClearsHotelWithZero(t *testing.T) {
	zero := int64(0)
	fs := TripUpdate{HotelID: &zero}.Fields()
	if len(fs) != 1 || fs[0].Column != "hotel_id" || fs[0].Value != nil {
		t.Fatalf("unexpected fields: %+v", fs)
	}
}

func TestTravellerUpdateEmptyDOBIsNull(t *testing.T) {
	empty := ""
	fs := TravellerUpdate{DOB: &empty}.Fields()
	if len(fs) != 1 || fs[0].Value != nil {
		t.Fatalf("unexpected fields: %+v", fs)
	}
}

func TestPackageInputValidate(t *testing.T) {
	ok := PackageInput{Name: "Deluxe", Price: 2000, DurationDays: 10}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []PackageInput{
		{Name: "", Price: 2000, DurationDays: 10},
		{Name: "Deluxe", Price: 0, DurationDays: 10},
		{Name: "Deluxe", Price: 2000, DurationDays: 0},
	}
	for _, in := range bad {
		if err := in.Validate(); !domain.IsValidation(err) {
			t.Errorf("%+v: expected validation error, got %v", in, err)
		}
	}
}

func TestBookingInputValidate(t *testing.T) {
	today := time.Date(2025, 8, 1, 15, 0, 0, 0, time.Local)
	in := BookingInput{UserID: 7, PackageID: 1, TravelDate: "2025-09-01", PaymentMethod: "Bank Transfer"}
	if err := in.Validate(today); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sameDay := in
	sameDay.TravelDate = "2025-08-01"
	if err := sameDay.Validate(today); err != nil {
		t.Fatalf("same-day travel should be allowed: %v", err)
	}

	past := in
	past.TravelDate = "2025-07-31"
	if err := past.Validate(today); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for past date, got %v", err)
	}

	method := in
	method.PaymentMethod = "Bitcoin"
	if err := method.Validate(today); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for payment method, got %v", err)
	}
}

func TestUserInputNormalizeAndValidate(t *testing.T) {
	in := UserInput{Name: " Aisyah ", PassportNumber: "a123", Email: " A@Example.COM ", Password: "secret1"}
	in.Normalize()
	if in.Email != "a@example.com" || in.PassportNumber != "A123" || in.Name != "Aisyah" {
		t.Fatalf("normalize: %+v", in)
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in.Password = "123"
	if err := in.Validate(); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTableOf(t *testing.T) {
	hotel := int64(3)
	tbl := TableOf("trips", []Trip{
		{ID: 1, PackageID: 2, TripDate: "2025-09-01", Price: 10, HotelID: &hotel, PackageName: "Deluxe"},
		{ID: 2, PackageID: 2, TripDate: "2025-10-01"},
	})
	if tbl.Kind != "trips" || tbl.Columns[0] != "id" || tbl.Columns[4] != "hotel_id" {
		t.Fatalf("columns: %v", tbl.Columns)
	}
	if tbl.Rows[0][4] != int64(3) || tbl.Rows[1][4] != nil {
		t.Fatalf("rows: %v", tbl.Rows)
	}
}

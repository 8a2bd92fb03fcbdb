package models

import (
	"strings"
	"time"

	"umrah/internal/domain"
	"umrah/internal/utils"
)

var PaymentMethods = []string{"Credit Card", "Bank Transfer", "Cash"}

type Booking struct {
	ID            int64                `db:"id" json:"id"`
	UserID        int64                `db:"user_id" json:"user_id"`
	PackageID     int64                `db:"package_id" json:"package_id"`
	BusID         *int64               `db:"bus_id" json:"bus_id"`
	TravelDate    string               `db:"travel_date" json:"travel_date"`
	PaymentMethod string               `db:"payment_method" json:"payment_method"`
	Status        domain.BookingStatus `db:"status" json:"status"`
	CreatedAt     time.Time            `db:"created_at" json:"created_at"`
}

// BookingOverview is the admin listing row.
type BookingOverview struct {
	ID            int64                `db:"id" json:"id"`
	UserID        int64                `db:"user_id" json:"user_id"`
	UserName      string               `db:"user_name" json:"user_name"`
	PackageName   string               `db:"package_name" json:"package_name"`
	TripID        *int64               `db:"trip_id" json:"trip_id"`
	TripDate      string               `db:"trip_date" json:"trip_date"`
	TravelDate    string               `db:"travel_date" json:"travel_date"`
	PaymentMethod string               `db:"payment_method" json:"payment_method"`
	Status        domain.BookingStatus `db:"status" json:"status"`
	BusNumber     string               `db:"bus_number" json:"bus_number"`
	GuideName     string               `db:"guide_name" json:"guide_name"`
}

// UserBooking is the traveller dashboard row.
type UserBooking struct {
	ID            int64                `db:"id" json:"id"`
	Package       string               `db:"package" json:"package"`
	TravelDate    string               `db:"travel_date" json:"travel_date"`
	Status        domain.BookingStatus `db:"status" json:"status"`
	PaymentMethod string               `db:"payment_method" json:"payment_method"`
	BusNumber     string               `db:"bus_number" json:"bus_number"`
}

// BookingVoucher is everything the PDF voucher prints.
type BookingVoucher struct {
	ID             int64                `db:"id"`
	UserID         int64                `db:"user_id"`
	UserName       string               `db:"user_name"`
	PassportNumber string               `db:"passport_number"`
	PackageName    string               `db:"package_name"`
	Price          float64              `db:"price"`
	DurationDays   int                  `db:"duration_days"`
	Hotel          string               `db:"hotel"`
	Transport      string               `db:"transport"`
	TravelDate     string               `db:"travel_date"`
	PaymentMethod  string               `db:"payment_method"`
	Status         domain.BookingStatus `db:"status"`
	BusNumber      string               `db:"bus_number"`
	GuideName      string               `db:"guide_name"`
}

type BookingInput struct {
	UserID        int64  `json:"-" form:"-"`
	PackageID     int64  `json:"package_id" form:"package_id"`
	TravelDate    string `json:"travel_date" form:"travel_date"`
	PaymentMethod string `json:"payment_method" form:"payment_method"`
	BusID         *int64 `json:"bus_id" form:"bus_id"`
}

// Validate checks the form; travel dates before today are rejected.
func (in BookingInput) Validate(today time.Time) error {
	if in.UserID <= 0 {
		return domain.ValidationError{Field: "user_id", Msg: "wajib login"}
	}
	if in.PackageID <= 0 {
		return domain.ValidationError{Field: "package_id", Msg: "wajib diisi"}
	}
	d, err := utils.ParseDate(in.TravelDate)
	if err != nil {
		return domain.ValidationError{Field: "travel_date", Msg: "format harus YYYY-MM-DD", Err: err}
	}
	if d.Before(utils.StartOfDay(today)) {
		return domain.ValidationError{Field: "travel_date", Msg: "tidak boleh di masa lalu"}
	}
	if !IsPaymentMethod(in.PaymentMethod) {
		return domain.ValidationError{Field: "payment_method", Msg: "harus salah satu dari " + strings.Join(PaymentMethods, ", ")}
	}
	// An empty bus_id form field binds as 0 and means no bus assigned.
	if in.BusID != nil && *in.BusID < 0 {
		return domain.ValidationError{Field: "bus_id", Msg: "tidak valid"}
	}
	return nil
}

func IsPaymentMethod(s string) bool {
	for _, m := range PaymentMethods {
		if s == m {
			return true
		}
	}
	return false
}

type BookingFile struct {
	ID         int64     `db:"id" json:"id"`
	BookingID  int64     `db:"booking_id" json:"booking_id"`
	FilePath   string    `db:"file_path" json:"file_path"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
}

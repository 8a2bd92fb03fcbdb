package models

import (
	"umrah/internal/domain"
	"umrah/internal/utils"
)

type Trip struct {
	ID          int64   `db:"id" json:"id"`
	PackageID   int64   `db:"package_id" json:"package_id"`
	TripDate    string  `db:"trip_date" json:"trip_date"`
	Price       float64 `db:"price" json:"price"`
	HotelID     *int64  `db:"hotel_id" json:"hotel_id"`
	PackageName string  `db:"package_name" json:"package_name"`
	HotelName   string  `db:"hotel_name" json:"hotel_name"`
}

type TripInput struct {
	PackageID int64   `json:"package_id"`
	TripDate  string  `json:"trip_date"`
	Price     float64 `json:"price"`
	HotelID   *int64  `json:"hotel_id"`
}

func (in TripInput) Validate() error {
	if in.PackageID <= 0 {
		return domain.ValidationError{Field: "package_id", Msg: "wajib diisi"}
	}
	if _, err := utils.ParseDate(in.TripDate); err != nil {
		return domain.ValidationError{Field: "trip_date", Msg: "format harus YYYY-MM-DD", Err: err}
	}
	if in.Price < 0 {
		return domain.ValidationError{Field: "price", Msg: "tidak boleh negatif"}
	}
	return nil
}

type TripUpdate struct {
	PackageID *int64   `json:"package_id"`
	TripDate  *string  `json:"trip_date"`
	Price     *float64 `json:"price"`
	HotelID   *int64   `json:"hotel_id"`
}

func (u TripUpdate) Validate() error {
	if u.PackageID != nil && *u.PackageID <= 0 {
		return domain.ValidationError{Field: "package_id", Msg: "tidak valid"}
	}
	if u.TripDate != nil {
		if _, err := utils.ParseDate(*u.TripDate); err != nil {
			return domain.ValidationError{Field: "trip_date", Msg: "format harus YYYY-MM-DD", Err: err}
		}
	}
	if u.Price != nil && *u.Price < 0 {
		return domain.ValidationError{Field: "price", Msg: "tidak boleh negatif"}
	}
	return nil
}

func (u TripUpdate) Fields() []Field {
	var fs fieldSet
	if u.PackageID != nil {
		fs = append(fs, Field{Column: "package_id", Value: *u.PackageID})
	}
	fs.str("trip_date", u.TripDate)
	fs.float("price", u.Price)
	fs.ref("hotel_id", u.HotelID)
	return fs
}

type Bus struct {
	ID        int64  `db:"id" json:"id"`
	TripID    int64  `db:"trip_id" json:"trip_id"`
	BusNumber string `db:"bus_number" json:"bus_number"`
	Capacity  int    `db:"capacity" json:"capacity"`
	GuideID   *int64 `db:"guide_id" json:"guide_id"`
	GuideName string `db:"guide_name" json:"guide_name"`
	TripDate  string `db:"trip_date" json:"trip_date"`
}

type BusInput struct {
	TripID    int64  `json:"trip_id"`
	BusNumber string `json:"bus_number"`
	Capacity  int    `json:"capacity"`
	GuideID   *int64 `json:"guide_id"`
}

func (in BusInput) Validate() error {
	if in.TripID <= 0 {
		return domain.ValidationError{Field: "trip_id", Msg: "wajib diisi"}
	}
	if utils.TrimOrEmpty(in.BusNumber) == "" {
		return domain.ValidationError{Field: "bus_number", Msg: "wajib diisi"}
	}
	if in.Capacity <= 0 {
		return domain.ValidationError{Field: "capacity", Msg: "harus lebih dari 0"}
	}
	return nil
}

type BusUpdate struct {
	TripID    *int64  `json:"trip_id"`
	BusNumber *string `json:"bus_number"`
	Capacity  *int    `json:"capacity"`
	GuideID   *int64  `json:"guide_id"`
}

func (u BusUpdate) Validate() error {
	if u.TripID != nil && *u.TripID <= 0 {
		return domain.ValidationError{Field: "trip_id", Msg: "tidak valid"}
	}
	if u.Capacity != nil && *u.Capacity <= 0 {
		return domain.ValidationError{Field: "capacity", Msg: "harus lebih dari 0"}
	}
	return nil
}

func (u BusUpdate) Fields() []Field {
	var fs fieldSet
	if u.TripID != nil {
		fs = append(fs, Field{Column: "trip_id", Value: *u.TripID})
	}
	fs.str("bus_number", u.BusNumber)
	fs.int("capacity", u.Capacity)
	fs.ref("guide_id", u.GuideID)
	return fs
}

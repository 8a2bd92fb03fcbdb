package models

import (
	"strings"

	"umrah/internal/domain"
)

type Package struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Price        float64 `db:"price" json:"price"`
	Hotel        string  `db:"hotel" json:"hotel"`
	DurationDays int     `db:"duration_days" json:"duration_days"`
	Transport    string  `db:"transport" json:"transport"`
}

type PackageInput struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Hotel        string  `json:"hotel"`
	DurationDays int     `json:"duration_days"`
	Transport    string  `json:"transport"`
}

func (in PackageInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	}
	if in.Price <= 0 {
		return domain.ValidationError{Field: "price", Msg: "harus lebih dari 0"}
	}
	if in.DurationDays <= 0 {
		return domain.ValidationError{Field: "duration_days", Msg: "harus lebih dari 0"}
	}
	return nil
}

type PackageUpdate struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	Hotel        *string  `json:"hotel"`
	DurationDays *int     `json:"duration_days"`
	Transport    *string  `json:"transport"`
}

func (u PackageUpdate) Validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "tidak boleh kosong"}
	}
	if u.Price != nil && *u.Price <= 0 {
		return domain.ValidationError{Field: "price", Msg: "harus lebih dari 0"}
	}
	if u.DurationDays != nil && *u.DurationDays <= 0 {
		return domain.ValidationError{Field: "duration_days", Msg: "harus lebih dari 0"}
	}
	return nil
}

func (u PackageUpdate) Fields() []Field {
	var fs fieldSet
	fs.str("name", u.Name)
	fs.float("price", u.Price)
	fs.str("hotel", u.Hotel)
	fs.int("duration_days", u.DurationDays)
	fs.str("transport", u.Transport)
	return fs
}

type Hotel struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	City   string `db:"city" json:"city"`
	Rating int    `db:"rating" json:"rating"`
}

type HotelInput struct {
	Name   string `json:"name"`
	City   string `json:"city"`
	Rating int    `json:"rating"`
}

func (in HotelInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	}
	if in.Rating < 0 || in.Rating > 5 {
		return domain.ValidationError{Field: "rating", Msg: "antara 0 dan 5"}
	}
	return nil
}

type HotelUpdate struct {
	Name   *string `json:"name"`
	City   *string `json:"city"`
	Rating *int    `json:"rating"`
}

func (u HotelUpdate) Validate() error {
	if u.Rating != nil && (*u.Rating < 0 || *u.Rating > 5) {
		return domain.ValidationError{Field: "rating", Msg: "antara 0 dan 5"}
	}
	return nil
}

func (u HotelUpdate) Fields() []Field {
	var fs fieldSet
	fs.str("name", u.Name)
	fs.str("city", u.City)
	fs.int("rating", u.Rating)
	return fs
}

type Guide struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone"`
	Email string `db:"email" json:"email"`
}

type GuideInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (in GuideInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	}
	return nil
}

type GuideUpdate struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

func (u GuideUpdate) Validate() error { return nil }

func (u GuideUpdate) Fields() []Field {
	var fs fieldSet
	fs.str("name", u.Name)
	fs.str("phone", u.Phone)
	fs.str("email", u.Email)
	return fs
}

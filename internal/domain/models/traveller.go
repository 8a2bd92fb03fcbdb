package models

import (
	"strings"

	"umrah/internal/domain"
	"umrah/internal/utils"
)

// Traveller is a pilgrim profile. HandledBy points at the staff user that
// processed it; it is stored but not used for access checks.
type Traveller struct {
	ID               int64  `db:"id" json:"id"`
	UserID           *int64 `db:"user_id" json:"user_id"`
	Name             string `db:"name" json:"name"`
	PassportNumber   string `db:"passport_number" json:"passport_number"`
	Nationality      string `db:"nationality" json:"nationality"`
	DOB              string `db:"dob" json:"dob"`
	Phone            string `db:"phone" json:"phone"`
	Email            string `db:"email" json:"email"`
	EmergencyContact string `db:"emergency_contact" json:"emergency_contact"`
	HandledBy        *int64 `db:"handled_by" json:"handled_by"`
}

type TravellerInput struct {
	UserID           *int64 `json:"user_id"`
	Name             string `json:"name"`
	PassportNumber   string `json:"passport_number"`
	Nationality      string `json:"nationality"`
	DOB              string `json:"dob"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	EmergencyContact string `json:"emergency_contact"`
	HandledBy        *int64 `json:"handled_by"`
}

func (in TravellerInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	}
	if strings.TrimSpace(in.PassportNumber) == "" {
		return domain.ValidationError{Field: "passport_number", Msg: "wajib diisi"}
	}
	if in.DOB != "" {
		if _, err := utils.ParseDate(in.DOB); err != nil {
			return domain.ValidationError{Field: "dob", Msg: "format harus YYYY-MM-DD", Err: err}
		}
	}
	return nil
}

type TravellerUpdate struct {
	UserID           *int64  `json:"user_id"`
	Name             *string `json:"name"`
	PassportNumber   *string `json:"passport_number"`
	Nationality      *string `json:"nationality"`
	DOB              *string `json:"dob"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	EmergencyContact *string `json:"emergency_contact"`
	HandledBy        *int64  `json:"handled_by"`
}

func (u TravellerUpdate) Validate() error {
	if u.DOB != nil && *u.DOB != "" {
		if _, err := utils.ParseDate(*u.DOB); err != nil {
			return domain.ValidationError{Field: "dob", Msg: "format harus YYYY-MM-DD", Err: err}
		}
	}
	return nil
}

func (u TravellerUpdate) Fields() []Field {
	var fs fieldSet
	fs.ref("user_id", u.UserID)
	fs.str("name", u.Name)
	fs.str("passport_number", u.PassportNumber)
	fs.str("nationality", u.Nationality)
	if u.DOB != nil {
		var dob any
		if *u.DOB != "" {
			dob = *u.DOB
		}
		fs = append(fs, Field{Column: "dob", Value: dob})
	}
	fs.str("phone", u.Phone)
	fs.str("email", u.Email)
	fs.str("emergency_contact", u.EmergencyContact)
	fs.ref("handled_by", u.HandledBy)
	return fs
}

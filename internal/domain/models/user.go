package models

import (
	"net/mail"
	"strings"
	"time"

	"umrah/internal/domain"
	"umrah/internal/utils"
)

type User struct {
	ID             int64       `db:"id" json:"id"`
	Name           string      `db:"name" json:"name"`
	PassportNumber string      `db:"passport_number" json:"passport_number"`
	Nationality    string      `db:"nationality" json:"nationality"`
	Email          string      `db:"email" json:"email"`
	Phone          string      `db:"phone" json:"phone"`
	PasswordHash   string      `db:"password_hash" json:"-"` // never sent to clients
	Role           domain.Role `db:"role_id" json:"role_id"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
}

type PublicUser struct {
	ID             int64       `db:"id" json:"id"`
	Name           string      `db:"name" json:"name"`
	PassportNumber string      `db:"passport_number" json:"passport_number"`
	Nationality    string      `db:"nationality" json:"nationality"`
	Email          string      `db:"email" json:"email"`
	Phone          string      `db:"phone" json:"phone"`
	Role           domain.Role `db:"role_id" json:"role_id"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
}

func (u *User) ToPublic() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Name:           u.Name,
		PassportNumber: u.PassportNumber,
		Nationality:    u.Nationality,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
	}
}

// UserInput is the registration form. Password is plain text here and hashed
// by the auth service before it reaches the store.
type UserInput struct {
	Name           string `json:"name"`
	PassportNumber string `json:"passport_number"`
	Nationality    string `json:"nationality"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Password       string `json:"password"`
}

func (in *UserInput) Normalize() {
	in.Name = utils.NormalizeSpace(in.Name)
	in.PassportNumber = strings.ToUpper(strings.TrimSpace(in.PassportNumber))
	in.Nationality = strings.TrimSpace(in.Nationality)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
}

func (in UserInput) Validate() error {
	switch {
	case in.Name == "":
		return domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	case in.PassportNumber == "":
		return domain.ValidationError{Field: "passport_number", Msg: "wajib diisi"}
	case in.Email == "":
		return domain.ValidationError{Field: "email", Msg: "wajib diisi"}
	case len(in.Password) < 6:
		return domain.ValidationError{Field: "password", Msg: "minimal 6 karakter"}
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return domain.ValidationError{Field: "email", Msg: "format tidak valid", Err: err}
	}
	return nil
}

// UserUpdate is the admin edit form. PasswordHash is filled by the service.
type UserUpdate struct {
	Name           *string      `json:"name"`
	PassportNumber *string      `json:"passport_number"`
	Nationality    *string      `json:"nationality"`
	Email          *string      `json:"email"`
	Phone          *string      `json:"phone"`
	Role           *domain.Role `json:"role_id"`
	PasswordHash   *string      `json:"-"`
}

func (u UserUpdate) Fields() []Field {
	var fs fieldSet
	fs.str("name", u.Name)
	fs.str("passport_number", u.PassportNumber)
	fs.str("nationality", u.Nationality)
	fs.str("email", u.Email)
	fs.str("phone", u.Phone)
	if u.Role != nil {
		fs = append(fs, Field{Column: "role_id", Value: int(*u.Role)})
	}
	fs.str("password_hash", u.PasswordHash)
	return fs
}

func (u UserUpdate) Validate() error {
	if u.Email != nil {
		if _, err := mail.ParseAddress(strings.TrimSpace(*u.Email)); err != nil {
			return domain.ValidationError{Field: "email", Msg: "format tidak valid", Err: err}
		}
	}
	if u.Role != nil && *u.Role != domain.RoleAdmin && *u.Role != domain.RoleTraveller {
		return domain.ValidationError{Field: "role_id", Msg: "harus 1 (admin) atau 2 (traveller)"}
	}
	return nil
}

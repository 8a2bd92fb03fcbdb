package db

import (
	"errors"

	"umrah/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers we translate.
const (
	errDupEntry        = 1062
	errRowIsReferenced = 1451
	errNoReferencedRow = 1452
	errCheckViolated   = 3819
)

// Classify turns a driver error into IntegrityError or StoreError.
// Errors that are already domain errors pass through unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsNotFound(err) || domain.IsValidation(err) || domain.IsIntegrity(err) ||
		domain.IsConflict(err) || domain.IsStore(err) || domain.IsTransition(err) {
		return err
	}

	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case errDupEntry:
			return domain.IntegrityError{Msg: "data sudah terdaftar (duplikat)", Err: err}
		case errRowIsReferenced:
			return domain.IntegrityError{Msg: "data masih dipakai oleh data lain", Err: err}
		case errNoReferencedRow:
			return domain.IntegrityError{Msg: "data referensi tidak ditemukan", Err: err}
		case errCheckViolated:
			return domain.IntegrityError{Msg: "nilai melanggar aturan data", Err: err}
		}
	}
	return domain.StoreError{Op: op, Err: err}
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMock(t)
	return AuthService{
		Users:    repositories.UserRepository{DB: db},
		Activity: activityFor(db),
		Secret:   []byte("test-secret"),
		TTL:      time.Hour,
		Now:      func() time.Time { return fixedNow },
	}, mock
}

func TestRegisterHashesPasswordAndReturnsTraveller(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Aisyah", "A1234567", "ID", "aisyah@example.com", "0812", sqlmock.AnyArg(), 2).
		WillReturnResult(sqlmock.NewResult(7, 1))
	expectActivity(mock, 7, "Registered account")

	u, err := svc.Register(context.Background(), models.UserInput{
		Name: " Aisyah ", PassportNumber: "a1234567", Nationality: "ID",
		Email: "Aisyah@Example.com", Phone: "0812", Password: "rahasia1",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID != 7 || u.Role != domain.RoleTraveller || u.Email != "aisyah@example.com" {
		t.Fatalf("unexpected user %+v", u)
	}
	met(t, mock)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.co' for key 'email'"})

	_, err := svc.Register(context.Background(), models.UserInput{
		Name: "A", PassportNumber: "P1", Email: "a@b.co", Password: "rahasia1",
	})
	var ie domain.IntegrityError
	if !errors.As(err, &ie) || ie.Msg != "email atau nomor paspor sudah terdaftar" {
		t.Fatalf("expected IntegrityError, got %v", err)
	}
	met(t, mock)
}

func userRow(mock sqlmock.Sqlmock, hash string, role domain.Role) {
	mock.ExpectQuery("FROM users WHERE email=").
		WithArgs("aisyah@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "passport_number", "nationality", "email", "phone", "role_id", "created_at", "password_hash"}).
			AddRow(7, "Aisyah", "A1234567", "ID", "aisyah@example.com", "0812", int(role), fixedNow, hash))
}

func TestLoginIssuesTokenThatParsesBack(t *testing.T) {
	svc, mock := newAuthService(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("rahasia1"), bcrypt.MinCost)

	userRow(mock, string(hash), domain.RoleTraveller)
	expectActivity(mock, 7, "Logged in")

	token, u, err := svc.Login(context.Background(), " Aisyah@example.com", "rahasia1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.ID != 7 || token == "" {
		t.Fatalf("unexpected login result %+v %q", u, token)
	}

	rc, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if rc.UserID != 7 || rc.Role != domain.RoleTraveller || rc.Name != "Aisyah" {
		t.Fatalf("unexpected session %+v", rc)
	}
	met(t, mock)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("rahasia1"), bcrypt.MinCost)
	userRow(mock, string(hash), domain.RoleTraveller)

	if _, _, err := svc.Login(context.Background(), "aisyah@example.com", "salah"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	met(t, mock)
}

func TestParseTokenRejectsExpiredAndForeignTokens(t *testing.T) {
	svc, _ := newAuthService(t)
	token, err := svc.IssueToken(adminRC)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	later := svc
	later.Now = func() time.Time { return fixedNow.Add(2 * time.Hour) }
	if _, err := later.ParseToken(token); err == nil {
		t.Fatalf("expected expired token to fail")
	}

	other := svc
	other.Secret = []byte("another-secret")
	if _, err := other.ParseToken(token); err == nil {
		t.Fatalf("expected signature mismatch to fail")
	}
}

func TestEnsureAdminSkipsWhenAdminExists(t *testing.T) {
	svc, mock := newAuthService(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE role_id=`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	if err := svc.EnsureAdmin(context.Background(), models.UserInput{}); err != nil {
		t.Fatalf("EnsureAdmin error: %v", err)
	}
	met(t, mock)
}

func TestEnsureAdminCreatesFirstAdmin(t *testing.T) {
	svc, mock := newAuthService(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE role_id=`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO users").
		WithArgs("Admin", "ADMIN", "", "admin@umrah.local", "", sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := svc.EnsureAdmin(context.Background(), models.UserInput{
		Name: "Admin", PassportNumber: "admin", Email: "admin@umrah.local", Password: "admin123",
	})
	if err != nil {
		t.Fatalf("EnsureAdmin error: %v", err)
	}
	met(t, mock)
}

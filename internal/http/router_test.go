package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	intconfig "umrah/internal/config"
	"umrah/internal/domain"
	"umrah/internal/http/handlers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	prev := intconfig.DB
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = prev
		db.Close()
	})

	r := NewRouter(intconfig.Env{
		JWTSecret:      "router-test-secret",
		JWTTTL:         time.Hour,
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 1 << 20,
	})
	return r, mock
}

func tokenFor(t *testing.T, rc domain.RequestContext) string {
	t.Helper()
	tok, err := handlers.AuthService("").IssueToken(rc)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	return tok
}

func do(r *gin.Engine, method, path, token string, body []byte, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var (
	admin     = domain.RequestContext{UserID: 1, Role: domain.RoleAdmin, Name: "Admin"}
	traveller = domain.RequestContext{UserID: 7, Role: domain.RoleTraveller, Name: "Aisyah"}
)

func TestHealthAndRequestID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/health", "", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}

	w = do(r, http.MethodGet, "/api/nope", "", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown route status = %d", w.Code)
	}
}

func TestRoleGates(t *testing.T) {
	r, mock := newTestRouter(t)

	if w := do(r, http.MethodGet, "/api/me/bookings", "", nil, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("visitor status = %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/me/bookings", "garbage", nil, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/admin/bookings", tokenFor(t, traveller), nil, ""); w.Code != http.StatusForbidden {
		t.Fatalf("traveller on admin route status = %d", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db access: %v", err)
	}
}

func TestPublicPackages(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery("FROM packages").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "hotel", "duration_days", "transport"}).
			AddRow(5, "Deluxe", "2000.00", "Hilton Makkah", 10, "Bus"))

	w := do(r, http.MethodGet, "/api/packages", "", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || len(out) != 1 || out[0]["name"] != "Deluxe" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestCreateBookingMultipart(t *testing.T) {
	r, mock := newTestRouter(t)
	travel := time.Now().AddDate(0, 1, 0).Format("2006-01-02")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(7), int64(5), travel, "Bank Transfer", nil).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO booking_files").
		WithArgs(int64(11), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO activity_log").
		WithArgs(int64(7), "Created booking 11").
		WillReturnResult(sqlmock.NewResult(1, 1))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("package_id", "5")
	_ = mw.WriteField("travel_date", travel)
	_ = mw.WriteField("payment_method", "Bank Transfer")
	_ = mw.WriteField("bus_id", "")
	fw, _ := mw.CreateFormFile("files", "passport.pdf")
	_, _ = fw.Write([]byte("%PDF-1.4"))
	_ = mw.Close()

	w := do(r, http.MethodPost, "/api/bookings", tokenFor(t, traveller), body.Bytes(), mw.FormDataContentType())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"status":"Pending"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdminBookingStatusTransitions(t *testing.T) {
	r, mock := newTestRouter(t)
	cols := []string{"id", "user_id", "package_id", "bus_id", "travel_date", "payment_method", "status", "created_at"}
	tok := tokenFor(t, admin)

	expectRole(mock, 1, domain.RoleAdmin)
	mock.ExpectQuery("FROM bookings WHERE id=").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(11, 7, 5, nil, "2026-12-01", "Cash", "Cancelled", time.Now()))

	w := do(r, http.MethodPut, "/api/admin/bookings/11/status", tok, []byte(`{"status":"confirmed"}`), "application/json")
	if w.Code != http.StatusConflict || !strings.Contains(w.Body.String(), "invalid_transition") {
		t.Fatalf("cancelled->confirmed: status = %d body=%s", w.Code, w.Body.String())
	}

	expectRole(mock, 1, domain.RoleAdmin)
	w = do(r, http.MethodPut, "/api/admin/bookings/11/status", tok, []byte(`{"status":"Shipped"}`), "application/json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown status: status = %d", w.Code)
	}

	expectRole(mock, 1, domain.RoleAdmin)
	mock.ExpectExec(`UPDATE bookings SET status=\? WHERE id=\?`).
		WithArgs("Confirmed", int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO activity_log").
		WithArgs(int64(1), "Forced booking 11 to Confirmed").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w = do(r, http.MethodPut, "/api/admin/bookings/11/status", tok, []byte(`{"status":"Confirmed","force":true}`), "application/json")
	if w.Code != http.StatusOK {
		t.Fatalf("force: status = %d body=%s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func expectRole(mock sqlmock.Sqlmock, userID int64, role domain.Role) {
	mock.ExpectQuery(`SELECT role_id FROM users WHERE id=\?`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"role_id"}).AddRow(int(role)))
}

func TestDemotedAdminTokenLosesAdminRoutes(t *testing.T) {
	r, mock := newTestRouter(t)
	tok := tokenFor(t, admin)

	expectRole(mock, 1, domain.RoleTraveller)
	if w := do(r, http.MethodGet, "/api/admin/bookings", tok, nil, ""); w.Code != http.StatusForbidden {
		t.Fatalf("demoted admin status = %d body=%s", w.Code, w.Body.String())
	}

	mock.ExpectQuery(`SELECT role_id FROM users WHERE id=\?`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"role_id"}))
	if w := do(r, http.MethodGet, "/api/admin/bookings", tok, nil, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("deleted admin status = %d body=%s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdminActivityGoesThroughService(t *testing.T) {
	r, mock := newTestRouter(t)
	tok := tokenFor(t, admin)

	expectRole(mock, 1, domain.RoleAdmin)
	mock.ExpectQuery(`FROM activity_log ORDER BY id DESC LIMIT \?`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "action", "timestamp"}).
			AddRow(4, 7, "Created booking 11", time.Now()))

	w := do(r, http.MethodGet, "/api/admin/activity?limit=5", tok, nil, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Created booking 11") {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodGet, "/api/admin/activity?limit=-1", tokenFor(t, traveller), nil, ""); w.Code != http.StatusForbidden {
		t.Fatalf("traveller activity status = %d", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterDuplicateIsConflict(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysqlDuplicate)

	body := []byte(`{"name":"Aisyah","passport_number":"A1","email":"a@example.com","password":"rahasia1"}`)
	w := do(r, http.MethodPost, "/api/auth/register", "", body, "application/json")
	if w.Code != http.StatusConflict || !strings.Contains(w.Body.String(), "sudah terdaftar") {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
}

var mysqlDuplicate = mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@example.com' for key 'uniq_users_email'"}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

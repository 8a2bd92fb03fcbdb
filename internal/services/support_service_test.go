package services

import (
	"context"
	"testing"

	"umrah/internal/domain"
	"umrah/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var supportCols = []string{"id", "user_id", "issue", "status", "created_at"}

func TestSupportTicketSubmittedThenResolved(t *testing.T) {
	db, mock := newMock(t)
	svc := SupportService{Repo: repositories.SupportRepository{DB: db}, Activity: activityFor(db)}
	ctx := context.Background()
	user3 := domain.RequestContext{UserID: 3, Role: domain.RoleTraveller}

	mock.ExpectExec("INSERT INTO support_requests").
		WithArgs(int64(3), "Visa belum diterima").
		WillReturnResult(sqlmock.NewResult(21, 1))
	expectActivity(mock, 3, "Submitted support request")
	mock.ExpectQuery("FROM support_requests WHERE id=").
		WithArgs(int64(21)).
		WillReturnRows(sqlmock.NewRows(supportCols).AddRow(21, 3, "Visa belum diterima", "Pending", fixedNow))
	mock.ExpectExec(`UPDATE support_requests SET status=\? WHERE id=\? AND status=\?`).
		WithArgs("Resolved", int64(21), "Pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectActivity(mock, 1, "Updated support request 21 from Pending to Resolved")
	mock.ExpectQuery("FROM support_requests WHERE user_id=").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(supportCols).AddRow(21, 3, "Visa belum diterima", "Resolved", fixedNow))

	id, err := svc.Create(ctx, user3, "  Visa belum diterima ")
	if err != nil || id != 21 {
		t.Fatalf("Create = %d, %v", id, err)
	}
	if err := svc.Transition(ctx, adminRC, 21, domain.SupportResolved); err != nil {
		t.Fatalf("Transition error: %v", err)
	}
	mine, err := svc.ListMine(ctx, user3)
	if err != nil || len(mine) != 1 || mine[0].Status != domain.SupportResolved {
		t.Fatalf("ListMine = %+v, %v", mine, err)
	}
	met(t, mock)
}

func TestSupportResolvedIsTerminal(t *testing.T) {
	db, mock := newMock(t)
	svc := SupportService{Repo: repositories.SupportRepository{DB: db}, Activity: activityFor(db)}

	mock.ExpectQuery("FROM support_requests WHERE id=").
		WillReturnRows(sqlmock.NewRows(supportCols).AddRow(21, 3, "x", "Resolved", fixedNow))

	if err := svc.Transition(context.Background(), adminRC, 21, domain.SupportPending); !domain.IsTransition(err) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	met(t, mock)
}

func TestSupportCreateRejectsBlankIssue(t *testing.T) {
	db, mock := newMock(t)
	svc := SupportService{Repo: repositories.SupportRepository{DB: db}}

	if _, err := svc.Create(context.Background(), travellerRC, "   "); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.RequestContext{}, "help"); !domain.IsForbidden(err) {
		t.Fatalf("expected Forbidden for visitor, got %v", err)
	}
	met(t, mock)
}

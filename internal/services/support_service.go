package services

import (
	"context"
	"fmt"
	"strings"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/metrics"
	"umrah/internal/repositories"
	"umrah/internal/utils"
)

type SupportService struct {
	Repo      repositories.SupportRepository
	Activity  ActivityService
	RequestID string
}

// Create opens a Pending ticket for the caller.
func (s SupportService) Create(ctx context.Context, rc domain.RequestContext, issue string) (int64, error) {
	if !rc.LoggedIn() {
		return 0, domain.ForbiddenError{Msg: "wajib login"}
	}
	issue = strings.TrimSpace(issue)
	if issue == "" {
		return 0, domain.ValidationError{Field: "issue", Msg: "wajib diisi"}
	}
	id, err := s.Repo.Create(ctx, rc.UserID, issue)
	if err != nil {
		return 0, err
	}
	metrics.SupportTickets.WithLabelValues("created").Inc()
	utils.LogEvent(s.RequestID, "support", "create", fmt.Sprintf("id=%d user_id=%d", id, rc.UserID))
	s.Activity.Record(ctx, rc.UserID, "Submitted support request")
	return id, nil
}

// Transition moves a ticket Pending -> Resolved. Same-status is a no-op.
func (s SupportService) Transition(ctx context.Context, rc domain.RequestContext, id int64, to domain.SupportStatus) error {
	if !rc.IsAdmin() {
		return errAdminOnly
	}
	cur, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	from := cur.Status
	if from == to {
		return nil
	}
	if !from.CanTransition(to) {
		metrics.RejectedTransitions.WithLabelValues("support_request").Inc()
		utils.LogWarn(s.RequestID, "support", "transition_rejected", fmt.Sprintf("id=%d from=%s to=%s terminal=%t", id, from, to, from.Terminal()))
		return domain.TransitionError{Resource: "support_request", From: string(from), To: string(to)}
	}
	ok, err := s.Repo.CompareAndSetStatus(ctx, id, from, to)
	if err != nil {
		return err
	}
	if !ok {
		latest, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return domain.ConflictError{Resource: "support_request", Msg: fmt.Sprintf("status sudah berubah menjadi %s", latest.Status)}
	}
	if to == domain.SupportResolved {
		metrics.SupportTickets.WithLabelValues("resolved").Inc()
	}
	utils.LogEvent(s.RequestID, "support", "transition", fmt.Sprintf("id=%d from=%s to=%s by=%d", id, from, to, rc.UserID))
	s.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Updated support request %d from %s to %s", id, from, to))
	return nil
}

func (s SupportService) ListMine(ctx context.Context, rc domain.RequestContext) ([]models.SupportRequest, error) {
	if !rc.LoggedIn() {
		return nil, domain.ForbiddenError{Msg: "wajib login"}
	}
	return s.Repo.ListByUser(ctx, rc.UserID)
}

func (s SupportService) ListAll(ctx context.Context, rc domain.RequestContext) ([]models.SupportRequest, error) {
	if !rc.IsAdmin() {
		return nil, errAdminOnly
	}
	return s.Repo.ListAll(ctx)
}

func (s SupportService) Delete(ctx context.Context, rc domain.RequestContext, id int64) error {
	if !rc.IsAdmin() {
		return errAdminOnly
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "support", "delete", fmt.Sprintf("id=%d by=%d", id, rc.UserID))
	s.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Deleted support_requests %d", id))
	return nil
}

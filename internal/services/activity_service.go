package services

import (
	"context"
	"fmt"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/metrics"
	"umrah/internal/repositories"
	"umrah/internal/utils"
)

// ActivityService appends to the audit trail. Record never fails the caller.
type ActivityService struct {
	Repo      repositories.ActivityRepository
	RequestID string
}

func (s ActivityService) Record(ctx context.Context, userID int64, action string) {
	if err := s.Repo.Create(ctx, userID, action); err != nil {
		metrics.ActivityLogFailures.Inc()
		utils.LogWarn(s.RequestID, "activity", "record", fmt.Sprintf("user_id=%d dropped: %v", userID, err))
	}
}

// List is the admin view of the audit trail, newest first; limit <= 0 means all.
func (s ActivityService) List(ctx context.Context, rc domain.RequestContext, limit int) ([]models.ActivityEntry, error) {
	if !rc.IsAdmin() {
		return nil, errAdminOnly
	}
	if limit < 0 {
		return nil, domain.ValidationError{Field: "limit", Msg: "tidak boleh negatif"}
	}
	return s.Repo.List(ctx, limit)
}

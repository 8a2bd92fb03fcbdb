package services

import (
	"context"
	"fmt"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/repositories"
	"umrah/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserService is the admin side of account management.
type UserService struct {
	Users     repositories.UserRepository
	Activity  ActivityService
	RequestID string
}

func (s UserService) List(ctx context.Context, rc domain.RequestContext) ([]models.PublicUser, error) {
	if !rc.IsAdmin() {
		return nil, errAdminOnly
	}
	return s.Users.List(ctx)
}

func (s UserService) Me(ctx context.Context, rc domain.RequestContext) (models.PublicUser, error) {
	if !rc.LoggedIn() {
		return models.PublicUser{}, domain.ForbiddenError{Msg: "wajib login"}
	}
	u, err := s.Users.GetByID(ctx, rc.UserID)
	if err != nil {
		return models.PublicUser{}, err
	}
	return u.ToPublic(), nil
}

// Update edits an account; a non-empty password is re-hashed.
func (s UserService) Update(ctx context.Context, rc domain.RequestContext, id int64, upd models.UserUpdate, password string) error {
	if !rc.IsAdmin() {
		return errAdminOnly
	}
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if err := upd.Validate(); err != nil {
		return err
	}
	if password != "" {
		if len(password) < 6 {
			return domain.ValidationError{Field: "password", Msg: "minimal 6 karakter"}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return domain.StoreError{Op: "hash password", Err: err}
		}
		h := string(hash)
		upd.PasswordHash = &h
	}
	if err := s.Users.Update(ctx, id, upd); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "users", "update", fmt.Sprintf("id=%d by=%d", id, rc.UserID))
	s.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Updated users %d", id))
	return nil
}

// Delete refuses to remove the caller's own account.
func (s UserService) Delete(ctx context.Context, rc domain.RequestContext, id int64) error {
	if !rc.IsAdmin() {
		return errAdminOnly
	}
	if id == rc.UserID {
		return domain.ValidationError{Field: "id", Msg: "tidak bisa menghapus akun sendiri"}
	}
	if err := s.Users.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "users", "delete", fmt.Sprintf("id=%d by=%d", id, rc.UserID))
	s.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Deleted users %d", id))
	return nil
}

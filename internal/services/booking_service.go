package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/metrics"
	"umrah/internal/repositories"
	"umrah/internal/utils"

	"github.com/google/uuid"
)

// BookingService owns the booking lifecycle: creation with documents, the
// Pending/Confirmed/Cancelled state machine and the per-user views.
type BookingService struct {
	Bookings  repositories.BookingRepository
	FileRepo  repositories.BookingFileRepository
	Uploads   UploadStore
	Docs      DocsService
	Activity  ActivityService
	RequestID string
	Now       func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create stores the booking and its documents atomically. The booking
// always starts Pending; files are written before the insert and removed
// again if the insert fails.
func (s BookingService) Create(ctx context.Context, rc domain.RequestContext, in models.BookingInput, uploads []Upload) (int64, error) {
	if !rc.LoggedIn() {
		return 0, domain.ForbiddenError{Msg: "wajib login untuk booking"}
	}
	in.UserID = rc.UserID
	if err := in.Validate(s.now()); err != nil {
		return 0, err
	}

	staging := uuid.NewString()
	paths := make([]string, 0, len(uploads))
	for _, up := range uploads {
		p, err := s.Uploads.Save(staging, up)
		if err != nil {
			s.Uploads.Remove(paths...)
			return 0, err
		}
		paths = append(paths, p)
	}

	var id int64
	var err error
	if len(paths) == 0 {
		id, err = s.Bookings.Create(ctx, in)
	} else {
		id, err = s.Bookings.CreateWithFiles(ctx, in, paths)
	}
	if err != nil {
		s.Uploads.Remove(paths...)
		return 0, err
	}
	metrics.BookingsCreated.Inc()
	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("id=%d user_id=%d files=%d", id, rc.UserID, len(paths)))
	s.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Created booking %d", id))
	return id, nil
}

// AttachFile adds a document to an existing, non-cancelled booking owned by
// the caller (admins may attach to any booking). The status is checked again
// by the insert itself, so a cancellation racing the upload wins.
func (s BookingService) AttachFile(ctx context.Context, rc domain.RequestContext, bookingID int64, up Upload) (models.BookingFile, error) {
	if !rc.LoggedIn() {
		return models.BookingFile{}, domain.ForbiddenError{Msg: "wajib login"}
	}
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return models.BookingFile{}, err
	}
	if b.UserID != rc.UserID && !rc.IsAdmin() {
		return models.BookingFile{}, domain.ForbiddenError{Msg: "booking bukan milik anda"}
	}
	if !b.Status.AcceptsDocuments() {
		return models.BookingFile{}, domain.TransitionError{Resource: "booking", From: string(b.Status), To: "attach file"}
	}

	path, err := s.Uploads.Save(strconv.FormatInt(bookingID, 10), up)
	if err != nil {
		return models.BookingFile{}, err
	}
	fid, ok, err := s.FileRepo.AttachToOpen(ctx, bookingID, path)
	if err != nil {
		s.Uploads.Remove(path)
		return models.BookingFile{}, err
	}
	if !ok {
		s.Uploads.Remove(path)
		latest, err := s.Bookings.GetByID(ctx, bookingID)
		if err != nil {
			return models.BookingFile{}, err
		}
		return models.BookingFile{}, domain.TransitionError{Resource: "booking", From: string(latest.Status), To: "attach file"}
	}
	utils.LogEvent(s.RequestID, "booking", "attach_file", fmt.Sprintf("booking_id=%d file_id=%d", bookingID, fid))
	s.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Uploaded file for booking %d", bookingID))
	return models.BookingFile{ID: fid, BookingID: bookingID, FilePath: path, UploadedAt: s.now()}, nil
}

// Transition applies a state-machine move. Asking for the current status is
// a no-op; a lost race against another writer is reported as a conflict.
func (s BookingService) Transition(ctx context.Context, rc domain.RequestContext, bookingID int64, to domain.BookingStatus) error {
	if !rc.IsAdmin() {
		return errAdminOnly
	}
	cur, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	from := cur.Status
	if from == to {
		return nil
	}
	if !from.CanTransition(to) {
		metrics.RejectedTransitions.WithLabelValues("booking").Inc()
		utils.LogWarn(s.RequestID, "booking", "transition_rejected", fmt.Sprintf("id=%d from=%s to=%s terminal=%t", bookingID, from, to, from.Terminal()))
		return domain.TransitionError{Resource: "booking", From: string(from), To: string(to)}
	}

	ok, err := s.Bookings.CompareAndSetStatus(ctx, bookingID, from, to)
	if err != nil {
		return err
	}
	if !ok {
		latest, err := s.Bookings.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		return domain.ConflictError{Resource: "booking", Msg: fmt.Sprintf("status sudah berubah menjadi %s", latest.Status)}
	}

	metrics.BookingTransitions.WithLabelValues(string(from), string(to)).Inc()
	utils.LogEvent(s.RequestID, "booking", "transition", fmt.Sprintf("id=%d from=%s to=%s by=%d", bookingID, from, to, rc.UserID))
	s.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Updated booking %d from %s to %s", bookingID, from, to))
	return nil
}

// ForceStatus bypasses the state machine. Admin only.
func (s BookingService) ForceStatus(ctx context.Context, rc domain.RequestContext, bookingID int64, to domain.BookingStatus) error {
	if !rc.IsAdmin() {
		return errAdminOnly
	}
	if err := s.Bookings.ForceStatus(ctx, bookingID, to); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "force_status", fmt.Sprintf("id=%d to=%s by=%d", bookingID, to, rc.UserID))
	s.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Forced booking %d to %s", bookingID, to))
	return nil
}

// Delete removes a booking and, through the foreign key, its file rows.
// Stored documents stay on disk.
func (s BookingService) Delete(ctx context.Context, rc domain.RequestContext, bookingID int64) error {
	if !rc.IsAdmin() {
		return errAdminOnly
	}
	if err := s.Bookings.Delete(ctx, bookingID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "delete", fmt.Sprintf("id=%d by=%d", bookingID, rc.UserID))
	s.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Deleted bookings %d", bookingID))
	return nil
}

func (s BookingService) ListMine(ctx context.Context, rc domain.RequestContext) ([]models.UserBooking, error) {
	if !rc.LoggedIn() {
		return nil, domain.ForbiddenError{Msg: "wajib login"}
	}
	return s.Bookings.ListByUser(ctx, rc.UserID)
}

func (s BookingService) ListAll(ctx context.Context, rc domain.RequestContext) ([]models.BookingOverview, error) {
	if !rc.IsAdmin() {
		return nil, errAdminOnly
	}
	return s.Bookings.ListAll(ctx)
}

// Files lists the documents of a booking visible to the caller.
func (s BookingService) Files(ctx context.Context, rc domain.RequestContext, bookingID int64) ([]models.BookingFile, error) {
	if !rc.LoggedIn() {
		return nil, domain.ForbiddenError{Msg: "wajib login"}
	}
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != rc.UserID && !rc.IsAdmin() {
		return nil, domain.ForbiddenError{Msg: "booking bukan milik anda"}
	}
	return s.FileRepo.ListByBooking(ctx, bookingID)
}

// Voucher renders the booking voucher PDF for its owner or an admin.
func (s BookingService) Voucher(ctx context.Context, rc domain.RequestContext, bookingID int64) ([]byte, string, error) {
	if !rc.LoggedIn() {
		return nil, "", domain.ForbiddenError{Msg: "wajib login"}
	}
	v, err := s.Bookings.Voucher(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	if v.UserID != rc.UserID && !rc.IsAdmin() {
		return nil, "", domain.ForbiddenError{Msg: "booking bukan milik anda"}
	}
	return s.Docs.Voucher(v)
}

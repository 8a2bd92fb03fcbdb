package services

import (
	"context"
	"fmt"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/repositories"
	"umrah/internal/utils"
)

var errAdminOnly = domain.ForbiddenError{Msg: "hanya admin"}

// Validator is implemented by every create form.
type Validator interface{ Validate() error }

// UpdateForm is a typed partial update; Fields lists only the columns set.
type UpdateForm interface {
	Validator
	Fields() []models.Field
}

// entityStore is the write half of a per-kind repository.
type entityStore[In Validator, Upd UpdateForm] interface {
	Create(ctx context.Context, in In) (int64, error)
	Update(ctx context.Context, id int64, upd Upd) error
	Delete(ctx context.Context, id int64) error
}

// Entity runs admin-only create/update/delete for one kind and writes the
// matching activity entry.
type Entity[In Validator, Upd UpdateForm] struct {
	Kind      domain.Kind
	Store     entityStore[In, Upd]
	Activity  ActivityService
	RequestID string
}

func (e Entity[In, Upd]) Create(ctx context.Context, rc domain.RequestContext, in In) (int64, error) {
	if !rc.IsAdmin() {
		return 0, errAdminOnly
	}
	if err := in.Validate(); err != nil {
		return 0, err
	}
	id, err := e.Store.Create(ctx, in)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(e.RequestID, string(e.Kind), "create", fmt.Sprintf("id=%d by=%d", id, rc.UserID))
	e.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Created %s %d", e.Kind, id))
	return id, nil
}

func (e Entity[In, Upd]) Update(ctx context.Context, rc domain.RequestContext, id int64, upd Upd) error {
	if !rc.IsAdmin() {
		return errAdminOnly
	}
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if err := upd.Validate(); err != nil {
		return err
	}
	if err := e.Store.Update(ctx, id, upd); err != nil {
		return err
	}
	utils.LogEvent(e.RequestID, string(e.Kind), "update", fmt.Sprintf("id=%d by=%d fields=%d", id, rc.UserID, len(upd.Fields())))
	e.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Updated %s %d", e.Kind, id))
	return nil
}

// Delete is idempotent: removing a missing row succeeds.
func (e Entity[In, Upd]) Delete(ctx context.Context, rc domain.RequestContext, id int64) error {
	if !rc.IsAdmin() {
		return errAdminOnly
	}
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if err := e.Store.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(e.RequestID, string(e.Kind), "delete", fmt.Sprintf("id=%d by=%d", id, rc.UserID))
	e.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Deleted %s %d", e.Kind, id))
	return nil
}

// CatalogService groups the admin-managed reference data.
type CatalogService struct {
	Packages   repositories.PackageRepository
	Hotels     repositories.HotelRepository
	Guides     repositories.GuideRepository
	Trips      repositories.TripRepository
	Buses      repositories.BusRepository
	Travellers repositories.TravellerRepository
	Users      repositories.UserRepository
	Bookings   repositories.BookingRepository
	Files      repositories.BookingFileRepository
	Support    repositories.SupportRepository
	Activity   ActivityService
	RequestID  string
}

func (s CatalogService) PackageAdmin() Entity[models.PackageInput, models.PackageUpdate] {
	return Entity[models.PackageInput, models.PackageUpdate]{Kind: domain.KindPackages, Store: s.Packages, Activity: s.Activity, RequestID: s.RequestID}
}

func (s CatalogService) HotelAdmin() Entity[models.HotelInput, models.HotelUpdate] {
	return Entity[models.HotelInput, models.HotelUpdate]{Kind: domain.KindHotels, Store: s.Hotels, Activity: s.Activity, RequestID: s.RequestID}
}

func (s CatalogService) GuideAdmin() Entity[models.GuideInput, models.GuideUpdate] {
	return Entity[models.GuideInput, models.GuideUpdate]{Kind: domain.KindGuides, Store: s.Guides, Activity: s.Activity, RequestID: s.RequestID}
}

func (s CatalogService) TripAdmin() Entity[models.TripInput, models.TripUpdate] {
	return Entity[models.TripInput, models.TripUpdate]{Kind: domain.KindTrips, Store: s.Trips, Activity: s.Activity, RequestID: s.RequestID}
}

func (s CatalogService) BusAdmin() Entity[models.BusInput, models.BusUpdate] {
	return Entity[models.BusInput, models.BusUpdate]{Kind: domain.KindBuses, Store: s.Buses, Activity: s.Activity, RequestID: s.RequestID}
}

func (s CatalogService) TravellerAdmin() Entity[models.TravellerInput, models.TravellerUpdate] {
	return Entity[models.TravellerInput, models.TravellerUpdate]{Kind: domain.KindTravellers, Store: s.Travellers, Activity: s.Activity, RequestID: s.RequestID}
}

func (s CatalogService) ListPackages(ctx context.Context) ([]models.Package, error) {
	return s.Packages.List(ctx)
}

func (s CatalogService) GetPackage(ctx context.Context, id int64) (models.Package, error) {
	return s.Packages.GetByID(ctx, id)
}

func (s CatalogService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	return s.Trips.List(ctx)
}

// ListEntities returns every row of one kind as a column/row table.
// Users are projected without their password hash.
func (s CatalogService) ListEntities(ctx context.Context, kind domain.Kind) (models.Table, error) {
	name := string(kind)
	switch kind {
	case domain.KindUsers:
		rows, err := s.Users.List(ctx)
		return tableOf(name, rows, err)
	case domain.KindPackages:
		rows, err := s.Packages.List(ctx)
		return tableOf(name, rows, err)
	case domain.KindHotels:
		rows, err := s.Hotels.List(ctx)
		return tableOf(name, rows, err)
	case domain.KindGuides:
		rows, err := s.Guides.List(ctx)
		return tableOf(name, rows, err)
	case domain.KindTrips:
		rows, err := s.Trips.List(ctx)
		return tableOf(name, rows, err)
	case domain.KindBuses:
		rows, err := s.Buses.List(ctx)
		return tableOf(name, rows, err)
	case domain.KindTravellers:
		rows, err := s.Travellers.List(ctx)
		return tableOf(name, rows, err)
	case domain.KindBookings:
		rows, err := s.Bookings.ListAll(ctx)
		return tableOf(name, rows, err)
	case domain.KindBookingFiles:
		rows, err := s.Files.List(ctx)
		return tableOf(name, rows, err)
	case domain.KindSupportRequests:
		rows, err := s.Support.ListAll(ctx)
		return tableOf(name, rows, err)
	case domain.KindActivityLog:
		rows, err := s.Activity.Repo.List(ctx, 0)
		return tableOf(name, rows, err)
	}
	return models.Table{}, domain.ValidationError{Field: "kind", Msg: "jenis data tidak dikenal: " + name}
}

func tableOf[T any](kind string, rows []T, err error) (models.Table, error) {
	if err != nil {
		return models.Table{}, err
	}
	return models.TableOf(kind, rows), nil
}

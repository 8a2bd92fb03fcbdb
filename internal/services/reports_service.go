package services

import (
	"context"
	"time"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/repositories"
	"umrah/internal/utils"
)

// UpcomingDays is how far ahead the admin overview looks for departures.
const UpcomingDays = 60

type ReportsService struct {
	Trips      repositories.TripRepository
	Travellers repositories.TravellerRepository
	Bookings   repositories.BookingRepository
	Support    repositories.SupportRepository
	Now        func() time.Time
}

// Dashboard is the traveller's own view.
type Dashboard struct {
	Bookings []models.UserBooking    `json:"bookings"`
	Support  []models.SupportRequest `json:"support"`
}

func (s ReportsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Overview returns entity counts, open tickets and trips departing in the
// next sixty days.
func (s ReportsService) Overview(ctx context.Context, rc domain.RequestContext) (models.Overview, error) {
	var out models.Overview
	if !rc.IsAdmin() {
		return out, errAdminOnly
	}
	var err error
	if out.Trips, err = s.Trips.Count(ctx); err != nil {
		return out, err
	}
	if out.Travellers, err = s.Travellers.Count(ctx); err != nil {
		return out, err
	}
	if out.Bookings, err = s.Bookings.Count(ctx); err != nil {
		return out, err
	}
	if out.OpenTickets, err = s.Support.CountOpen(ctx); err != nil {
		return out, err
	}
	today := utils.StartOfDay(s.now())
	out.UpcomingTrips, err = s.Trips.ListBetween(ctx, utils.FormatDate(today), utils.FormatDate(today.AddDate(0, 0, UpcomingDays)))
	return out, err
}

func (s ReportsService) Dashboard(ctx context.Context, rc domain.RequestContext) (Dashboard, error) {
	if !rc.LoggedIn() {
		return Dashboard{}, domain.ForbiddenError{Msg: "wajib login"}
	}
	b, err := s.Bookings.ListByUser(ctx, rc.UserID)
	if err != nil {
		return Dashboard{}, err
	}
	t, err := s.Support.ListByUser(ctx, rc.UserID)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{Bookings: b, Support: t}, nil
}

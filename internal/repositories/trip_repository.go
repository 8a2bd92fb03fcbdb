package repositories

import (
	"context"
	"database/sql"

	intdb "umrah/internal/db"
	"umrah/internal/domain"
	"umrah/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB { return pick(r.DB) }

var tripSelect = `
	SELECT t.id, t.package_id, ` + dateCol("t.trip_date", "trip_date") + `, t.price, t.hotel_id,
	       p.name AS package_name, COALESCE(h.name, '') AS hotel_name
	FROM trips t
	JOIN packages p ON t.package_id = p.id
	LEFT JOIN hotels h ON t.hotel_id = h.id`

// List returns trips joined with package and hotel names.
func (r TripRepository) List(ctx context.Context) ([]models.Trip, error) {
	out := []models.Trip{}
	err := intdb.Select(ctx, r.db(), &out, tripSelect+` ORDER BY t.id`)
	return out, err
}

// ListBetween returns trips departing in [from, to], both YYYY-MM-DD.
func (r TripRepository) ListBetween(ctx context.Context, from, to string) ([]models.Trip, error) {
	out := []models.Trip{}
	err := intdb.Select(ctx, r.db(), &out,
		tripSelect+` WHERE t.trip_date BETWEEN ? AND ? ORDER BY t.trip_date, t.id`, from, to)
	return out, err
}

func (r TripRepository) Count(ctx context.Context) (int, error) {
	return intdb.Count(ctx, r.db(), `SELECT COUNT(*) FROM trips`)
}

func (r TripRepository) Create(ctx context.Context, in models.TripInput) (int64, error) {
	return intdb.Insert(ctx, r.db(), "insert trip",
		`INSERT INTO trips (package_id, trip_date, price, hotel_id) VALUES (?, ?, ?, ?)`,
		in.PackageID, in.TripDate, in.Price, intdb.NullIfZero(in.HotelID))
}

func (r TripRepository) Update(ctx context.Context, id int64, upd models.TripUpdate) error {
	return intdb.UpdateColumns(ctx, r.db(), domain.KindTrips, id, upd.Fields())
}

func (r TripRepository) Delete(ctx context.Context, id int64) error {
	return intdb.DeleteByID(ctx, r.db(), domain.KindTrips, id)
}

type BusRepository struct {
	DB *sql.DB
}

func (r BusRepository) db() *sql.DB { return pick(r.DB) }

// List returns buses joined with guide name and trip date.
func (r BusRepository) List(ctx context.Context) ([]models.Bus, error) {
	out := []models.Bus{}
	err := intdb.Select(ctx, r.db(), &out, `
		SELECT b.id, b.trip_id, b.bus_number, b.capacity, b.guide_id,
		       COALESCE(g.name, '') AS guide_name, `+dateCol("t.trip_date", "trip_date")+`
		FROM buses b
		LEFT JOIN guides g ON b.guide_id = g.id
		JOIN trips t ON b.trip_id = t.id
		ORDER BY b.id`)
	return out, err
}

func (r BusRepository) Create(ctx context.Context, in models.BusInput) (int64, error) {
	return intdb.Insert(ctx, r.db(), "insert bus",
		`INSERT INTO buses (trip_id, bus_number, capacity, guide_id) VALUES (?, ?, ?, ?)`,
		in.TripID, in.BusNumber, in.Capacity, intdb.NullIfZero(in.GuideID))
}

func (r BusRepository) Update(ctx context.Context, id int64, upd models.BusUpdate) error {
	return intdb.UpdateColumns(ctx, r.db(), domain.KindBuses, id, upd.Fields())
}

func (r BusRepository) Delete(ctx context.Context, id int64) error {
	return intdb.DeleteByID(ctx, r.db(), domain.KindBuses, id)
}

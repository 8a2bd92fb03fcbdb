package repositories

import (
	"context"
	"database/sql"

	intdb "umrah/internal/db"
	"umrah/internal/domain"
	"umrah/internal/domain/models"
)

type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) db() *sql.DB { return pick(r.DB) }

func (r PackageRepository) List(ctx context.Context) ([]models.Package, error) {
	out := []models.Package{}
	err := intdb.Select(ctx, r.db(), &out,
		`SELECT id, name, price, hotel, duration_days, transport FROM packages ORDER BY id`)
	return out, err
}

func (r PackageRepository) GetByID(ctx context.Context, id int64) (models.Package, error) {
	var p models.Package
	err := intdb.Get(ctx, r.db(), &p, "package",
		`SELECT id, name, price, hotel, duration_days, transport FROM packages WHERE id=? LIMIT 1`, id)
	return p, err
}

func (r PackageRepository) Create(ctx context.Context, in models.PackageInput) (int64, error) {
	return intdb.Insert(ctx, r.db(), "insert package",
		`INSERT INTO packages (name, price, hotel, duration_days, transport) VALUES (?, ?, ?, ?, ?)`,
		in.Name, in.Price, in.Hotel, in.DurationDays, in.Transport)
}

func (r PackageRepository) Update(ctx context.Context, id int64, upd models.PackageUpdate) error {
	return intdb.UpdateColumns(ctx, r.db(), domain.KindPackages, id, upd.Fields())
}

func (r PackageRepository) Delete(ctx context.Context, id int64) error {
	return intdb.DeleteByID(ctx, r.db(), domain.KindPackages, id)
}

type HotelRepository struct {
	DB *sql.DB
}

func (r HotelRepository) db() *sql.DB { return pick(r.DB) }

func (r HotelRepository) List(ctx context.Context) ([]models.Hotel, error) {
	out := []models.Hotel{}
	err := intdb.Select(ctx, r.db(), &out, `SELECT id, name, city, rating FROM hotels ORDER BY id`)
	return out, err
}

func (r HotelRepository) Create(ctx context.Context, in models.HotelInput) (int64, error) {
	return intdb.Insert(ctx, r.db(), "insert hotel",
		`INSERT INTO hotels (name, city, rating) VALUES (?, ?, ?)`, in.Name, in.City, in.Rating)
}

func (r HotelRepository) Update(ctx context.Context, id int64, upd models.HotelUpdate) error {
	return intdb.UpdateColumns(ctx, r.db(), domain.KindHotels, id, upd.Fields())
}

func (r HotelRepository) Delete(ctx context.Context, id int64) error {
	return intdb.DeleteByID(ctx, r.db(), domain.KindHotels, id)
}

type GuideRepository struct {
	DB *sql.DB
}

func (r GuideRepository) db() *sql.DB { return pick(r.DB) }

func (r GuideRepository) List(ctx context.Context) ([]models.Guide, error) {
	out := []models.Guide{}
	err := intdb.Select(ctx, r.db(), &out, `SELECT id, name, phone, email FROM guides ORDER BY id`)
	return out, err
}

func (r GuideRepository) Create(ctx context.Context, in models.GuideInput) (int64, error) {
	return intdb.Insert(ctx, r.db(), "insert guide",
		`INSERT INTO guides (name, phone, email) VALUES (?, ?, ?)`, in.Name, in.Phone, in.Email)
}

func (r GuideRepository) Update(ctx context.Context, id int64, upd models.GuideUpdate) error {
	return intdb.UpdateColumns(ctx, r.db(), domain.KindGuides, id, upd.Fields())
}

func (r GuideRepository) Delete(ctx context.Context, id int64) error {
	return intdb.DeleteByID(ctx, r.db(), domain.KindGuides, id)
}

package repositories

import (
	"context"
	"database/sql"

	intdb "umrah/internal/db"
	"umrah/internal/domain"
	"umrah/internal/domain/models"
)

type TravellerRepository struct {
	DB *sql.DB
}

func (r TravellerRepository) db() *sql.DB { return pick(r.DB) }

func (r TravellerRepository) List(ctx context.Context) ([]models.Traveller, error) {
	out := []models.Traveller{}
	err := intdb.Select(ctx, r.db(), &out, `
		SELECT id, user_id, name, passport_number, nationality, `+dateCol("dob", "dob")+`,
		       phone, email, emergency_contact, handled_by
		FROM travellers ORDER BY id`)
	return out, err
}

func (r TravellerRepository) Count(ctx context.Context) (int, error) {
	return intdb.Count(ctx, r.db(), `SELECT COUNT(*) FROM travellers`)
}

func (r TravellerRepository) Create(ctx context.Context, in models.TravellerInput) (int64, error) {
	return intdb.Insert(ctx, r.db(), "insert traveller", `
		INSERT INTO travellers (user_id, name, passport_number, nationality, dob, phone, email, emergency_contact, handled_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		intdb.NullIfZero(in.UserID), in.Name, in.PassportNumber, in.Nationality, intdb.NullIfEmpty(in.DOB),
		in.Phone, in.Email, in.EmergencyContact, intdb.NullIfZero(in.HandledBy))
}

func (r TravellerRepository) Update(ctx context.Context, id int64, upd models.TravellerUpdate) error {
	return intdb.UpdateColumns(ctx, r.db(), domain.KindTravellers, id, upd.Fields())
}

func (r TravellerRepository) Delete(ctx context.Context, id int64) error {
	return intdb.DeleteByID(ctx, r.db(), domain.KindTravellers, id)
}

package repositories

import (
	"context"
	"database/sql"

	intdb "umrah/internal/db"
	"umrah/internal/domain"
	"umrah/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB { return pick(r.DB) }

const publicUserCols = `id, name, passport_number, nationality, email, phone, role_id, created_at`

func (r UserRepository) List(ctx context.Context) ([]models.PublicUser, error) {
	out := []models.PublicUser{}
	err := intdb.Select(ctx, r.db(), &out, `SELECT `+publicUserCols+` FROM users ORDER BY id`)
	return out, err
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := intdb.Get(ctx, r.db(), &u, "user",
		`SELECT `+publicUserCols+`, password_hash FROM users WHERE id=? LIMIT 1`, id)
	return u, err
}

// RoleOf reads the current role_id of an account.
func (r UserRepository) RoleOf(ctx context.Context, id int64) (domain.Role, error) {
	var role int
	if err := intdb.Get(ctx, r.db(), &role, "user", `SELECT role_id FROM users WHERE id=? LIMIT 1`, id); err != nil {
		return domain.RoleVisitor, err
	}
	return domain.Role(role), nil
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := intdb.Get(ctx, r.db(), &u, "user",
		`SELECT `+publicUserCols+`, password_hash FROM users WHERE email=? LIMIT 1`, email)
	return u, err
}

// Create inserts a user whose password is already hashed. Duplicate email or
// passport surfaces as domain.IntegrityError.
func (r UserRepository) Create(ctx context.Context, in models.UserInput, passwordHash string, role domain.Role) (int64, error) {
	return intdb.Insert(ctx, r.db(), "insert user", `
		INSERT INTO users (name, passport_number, nationality, email, phone, password_hash, role_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.PassportNumber, in.Nationality, in.Email, in.Phone, passwordHash, int(role))
}

func (r UserRepository) Update(ctx context.Context, id int64, upd models.UserUpdate) error {
	return intdb.UpdateColumns(ctx, r.db(), domain.KindUsers, id, upd.Fields())
}

func (r UserRepository) Delete(ctx context.Context, id int64) error {
	return intdb.DeleteByID(ctx, r.db(), domain.KindUsers, id)
}

func (r UserRepository) CountAdmins(ctx context.Context) (int, error) {
	return intdb.Count(ctx, r.db(), `SELECT COUNT(*) FROM users WHERE role_id=?`, int(domain.RoleAdmin))
}

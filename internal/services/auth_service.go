package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/repositories"
	"umrah/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned by Login for unknown email or wrong password.
var ErrBadCredentials error = domain.ValidationError{Msg: "email atau password salah"}

type AuthService struct {
	Users     repositories.UserRepository
	Activity  ActivityService
	Secret    []byte
	TTL       time.Duration
	RequestID string
	Now       func() time.Time
}

type sessionClaims struct {
	UserID int64  `json:"user_id"`
	Role   int    `json:"role"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Register creates a traveller account. A duplicate email or passport yields
// an IntegrityError with a user-facing message.
func (s AuthService) Register(ctx context.Context, in models.UserInput) (models.PublicUser, error) {
	u, err := s.createAccount(ctx, in, domain.RoleTraveller)
	if err != nil {
		return u, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d", u.ID))
	s.Activity.Record(ctx, u.ID, "Registered account")
	return u, nil
}

// CreateAccount lets an admin open an account with an explicit role.
func (s AuthService) CreateAccount(ctx context.Context, rc domain.RequestContext, in models.UserInput, role domain.Role) (models.PublicUser, error) {
	if !rc.IsAdmin() {
		return models.PublicUser{}, errAdminOnly
	}
	if role == domain.RoleVisitor {
		role = domain.RoleTraveller
	}
	if role != domain.RoleAdmin && role != domain.RoleTraveller {
		return models.PublicUser{}, domain.ValidationError{Field: "role_id", Msg: "harus 1 (admin) atau 2 (traveller)"}
	}
	u, err := s.createAccount(ctx, in, role)
	if err != nil {
		return u, err
	}
	utils.LogEvent(s.RequestID, "users", "create", fmt.Sprintf("id=%d role=%s by=%d", u.ID, role, rc.UserID))
	s.Activity.Record(ctx, rc.UserID, fmt.Sprintf("Created users %d", u.ID))
	return u, nil
}

func (s AuthService) createAccount(ctx context.Context, in models.UserInput, role domain.Role) (models.PublicUser, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return models.PublicUser{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.PublicUser{}, domain.StoreError{Op: "hash password", Err: err}
	}
	id, err := s.Users.Create(ctx, in, string(hash), role)
	if err != nil {
		if domain.IsIntegrity(err) {
			return models.PublicUser{}, domain.IntegrityError{Resource: "user", Msg: "email atau nomor paspor sudah terdaftar", Err: err}
		}
		return models.PublicUser{}, err
	}
	return models.PublicUser{
		ID:             id,
		Name:           in.Name,
		PassportNumber: in.PassportNumber,
		Nationality:    in.Nationality,
		Email:          in.Email,
		Phone:          in.Phone,
		Role:           role,
		CreatedAt:      s.now(),
	}, nil
}

// Login checks the credential and issues a signed session token.
func (s AuthService) Login(ctx context.Context, email, password string) (string, models.PublicUser, error) {
	u, err := s.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.PublicUser{}, ErrBadCredentials
		}
		return "", models.PublicUser{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", models.PublicUser{}, ErrBadCredentials
	}
	token, err := s.IssueToken(domain.RequestContext{UserID: u.ID, Role: u.Role, Name: u.Name})
	if err != nil {
		return "", models.PublicUser{}, err
	}
	s.Activity.Record(ctx, u.ID, "Logged in")
	return token, u.ToPublic(), nil
}

func (s AuthService) IssueToken(rc domain.RequestContext) (string, error) {
	if len(s.Secret) == 0 {
		return "", errors.New("jwt secret kosong")
	}
	ttl := s.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := s.now()
	claims := sessionClaims{
		UserID: rc.UserID,
		Role:   int(rc.Role),
		Name:   rc.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(rc.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// ParseToken validates a token and returns the session it carries.
func (s AuthService) ParseToken(raw string) (domain.RequestContext, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return domain.RequestContext{}, err
	}
	role := domain.Role(claims.Role)
	if claims.UserID <= 0 || (role != domain.RoleAdmin && role != domain.RoleTraveller) {
		return domain.RequestContext{}, errors.New("token tidak valid")
	}
	return domain.RequestContext{UserID: claims.UserID, Role: role, Name: claims.Name}, nil
}

// CurrentRole returns the role stored for the account now, which may differ
// from the one signed into an older token.
func (s AuthService) CurrentRole(ctx context.Context, userID int64) (domain.Role, error) {
	return s.Users.RoleOf(ctx, userID)
}

// EnsureAdmin creates the bootstrap admin when no admin exists yet.
func (s AuthService) EnsureAdmin(ctx context.Context, in models.UserInput) error {
	n, err := s.Users.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	u, err := s.createAccount(ctx, in, domain.RoleAdmin)
	if err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "auth", "bootstrap_admin", fmt.Sprintf("user_id=%d email=%s", u.ID, u.Email))
	return nil
}

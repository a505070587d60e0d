package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/avdeev-m/finance-tracker/internal/model"
)

var DuplicateUserErr = errors.New("user with this email already exists")

//go:generate mockery --name=Users

type Users interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

type Postgres struct {
	conn *pgxpool.Pool
}

func NewPostgres(conn *pgxpool.Pool) *Postgres {
	return &Postgres{
		conn: conn,
	}
}

func (u *Postgres) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO finance.users (full_name, email, password, profile_image_url) VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING RETURNING id, created_at`
	err := u.conn.QueryRow(ctx, query, user.FullName, user.Email, user.Password, user.ProfileImageURL).
		Scan(&user.ID, &user.CreatedAt)
	if err == pgx.ErrNoRows {
		return DuplicateUserErr
	}
	if err != nil {
		return fmt.Errorf("repository.Users, create user error: %v", err)
	}
	return nil
}

func (u *Postgres) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, full_name, email, password, profile_image_url, created_at FROM finance.users WHERE email=$1`
	return u.get(ctx, query, email)
}

func (u *Postgres) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, full_name, email, password, profile_image_url, created_at FROM finance.users WHERE id=$1`
	return u.get(ctx, query, id)
}

func (u *Postgres) get(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	var user model.User
	err := u.conn.QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.FullName, &user.Email, &user.Password, &user.ProfileImageURL, &user.CreatedAt)
	if err != nil && err != pgx.ErrNoRows {
		return nil, fmt.Errorf("repository.Users, get user error: %v", err)
	} else if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &user, nil
}

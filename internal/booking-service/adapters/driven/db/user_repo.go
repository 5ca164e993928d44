package db

import (
	"context"
	"errors"

	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"
	"bookmycar/internal/booking-service/core/ports/driven"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) driven.IUserRepo {
	return &UserRepo{
		db: db,
	}
}

func (ur *UserRepo) Create(ctx context.Context, user model.UserAccount) error {
	q := `
	INSERT INTO users(
		email,
		username,
		password,
		created_at
	) VALUES ($1, $2, $3, $4)`

	conn := ur.db.conn
	_, err := conn.Exec(ctx, q, user.Email, user.Username, user.Password, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return myerrors.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (ur *UserRepo) GetByEmail(ctx context.Context, email string) (model.UserAccount, error) {
	q := `
	SELECT
		email,
		username,
		password,
		created_at
	FROM
		users
	WHERE
		email = $1`

	conn := ur.db.conn
	var user model.UserAccount
	row := conn.QueryRow(ctx, q, email)
	if err := row.Scan(&user.Email, &user.Username, &user.Password, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserAccount{}, myerrors.ErrAccountNotFound
		}
		return model.UserAccount{}, err
	}
	return user, nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ravi30T/invoice-management-backend/internal/database"
	"github.com/Ravi30T/invoice-management-backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// CreateUser persists a new user. The caller supplies UserID and the
// password hash; id and created_at come back from the database. A clash on
// the email unique index surfaces as ErrDuplicateEmail.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (user_id, user_name, email, password_hash, balance)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		u.UserID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Balance,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// GetUserByEmail looks a user up by exact email match (case-sensitive).
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, user_name, email, password_hash, balance, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.UserID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Balance,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// GetUserByUserID looks a user up by the opaque identity token, never by the
// serial storage key.
func GetUserByUserID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, user_name, email, password_hash, balance, created_at
		 FROM users WHERE user_id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.UserID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Balance,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByUserID: %w", err)
	}
	return u, nil
}

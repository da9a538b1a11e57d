package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

const (
	insertUserSQL      = `INSERT INTO users (email, password, admin) VALUES ($1, $2, $3) RETURNING id`
	selectUserByIDSQL  = `SELECT id, email, password, admin FROM users WHERE id = $1`
	selectUserByEmail  = `SELECT id, email, password, admin FROM users WHERE email = $1`
	selectAllUsersSQL  = `SELECT id, email, password, admin FROM users ORDER BY id`
	updateUserSQL      = `UPDATE users SET email = $1, password = $2, admin = $3 WHERE id = $4`
	uniqueViolationSQL = "23505"
)

// deleteUserCascadeSQL removes the account's dependent rows first so the
// delete succeeds without relying on FK cascade rules.
var deleteUserCascadeSQL = []string{
	`DELETE FROM favorite_destination WHERE user_id = $1`,
	`DELETE FROM visited_destination WHERE user_id = $1`,
	`DELETE FROM review WHERE user_id = $1`,
	`DELETE FROM gallery WHERE profile_id IN (SELECT id FROM profile WHERE user_id = $1)`,
	`DELETE FROM profile WHERE user_id = $1`,
	`DELETE FROM users WHERE id = $1`,
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.pool.QueryRow(ctx, insertUserSQL, user.Email, user.PasswordHash, user.Admin).Scan(&user.ID)
	if isUniqueViolation(err) {
		return domerrors.ErrEmailExists
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, selectUserByIDSQL, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, selectUserByEmail, email))
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.pool.Query(ctx, selectAllUsersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Admin); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, updateUserSQL, user.Email, user.PasswordHash, user.Admin, user.ID)
	if isUniqueViolation(err) {
		return domerrors.ErrEmailExists
	}
	return err
}

// Delete removes the account and its dependent rows in one transaction.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		for _, q := range deleteUserCascadeSQL {
			if _, err := tx.Exec(ctx, q, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Admin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationSQL
}

var _ ports.UserRepository = (*UserRepository)(nil)

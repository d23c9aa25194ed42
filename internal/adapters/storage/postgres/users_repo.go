package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cats-api/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (int64, int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO "user" (user_name, role) VALUES ($1, $2) RETURNING user_id`,
		u.Name, u.Role,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, mapError(err)
	}
	return id, 1, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, bool, error) {
	var u users.User
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, user_name, role FROM "user" WHERE user_id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, false, nil
	}
	if err != nil {
		return users.User{}, false, err
	}
	return u, true, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id, user_name, role FROM "user" ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Role); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

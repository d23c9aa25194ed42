package sqlite

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
	res, err := r.db.ExecContext(ctx, `INSERT INTO "user" (user_name, role) VALUES (?, ?)`, u.Name, u.Role)
	if err != nil {
		return 0, 0, mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, 0, err
	}
	return id, affected, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, bool, error) {
	var u users.User
	err := r.db.QueryRowContext(ctx, `SELECT user_id, user_name, role FROM "user" WHERE user_id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Role)
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

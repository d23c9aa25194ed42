package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cats-api/internal/domain/cats"
)

// coords es POINT(lat, lng): coords[0] = lat, coords[1] = lng.
// El dueño se arma en SQL con json_build_object y se decodifica al escanear.
const selectCats = `
	SELECT
		c.cat_id, c.cat_name, c.weight, c.filename, c.birthdate,
		c.coords[0] AS lat, c.coords[1] AS lng,
		json_build_object('user_id', u.user_id, 'user_name', u.user_name) AS owner
	FROM cat c
	JOIN "user" u ON c.owner = u.user_id
`

type CatsRepo struct {
	db *sql.DB
}

func NewCatsRepo(db *sql.DB) *CatsRepo {
	return &CatsRepo{db: db}
}

func (r *CatsRepo) List(ctx context.Context) ([]cats.Cat, error) {
	return r.query(ctx, selectCats+` ORDER BY c.cat_id`)
}

func (r *CatsRepo) GetByID(ctx context.Context, id int64) (cats.Cat, bool, error) {
	c, err := scanCat(r.db.QueryRowContext(ctx, selectCats+` WHERE c.cat_id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return cats.Cat{}, false, nil
	}
	if err != nil {
		return cats.Cat{}, false, err
	}
	return c, true, nil
}

func (r *CatsRepo) Create(ctx context.Context, in cats.NewCat) (int64, int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cat (cat_name, weight, owner, filename, birthdate, coords)
		VALUES ($1, $2, $3, $4, $5, point($6, $7))
		RETURNING cat_id
	`,
		in.Name,
		in.Weight,
		in.OwnerID,
		in.Filename,
		in.Birthdate,
		in.Coords.Lat,
		in.Coords.Lng,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, mapError(err)
	}
	return id, 1, nil
}

func (r *CatsRepo) Update(ctx context.Context, id int64, p cats.Patch, scope cats.Scope) (int64, error) {
	query, args := buildUpdate(id, p, scope)
	if query == "" {
		return 0, nil
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}

func (r *CatsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cat WHERE cat_id = $1`, id)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}

func (r *CatsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]cats.Cat, error) {
	return r.query(ctx, selectCats+` WHERE c.owner = $1 ORDER BY c.cat_id`, ownerID)
}

// buildUpdate genera:
//
//	UPDATE cat SET <campos presentes> WHERE cat_id = $n AND ($n+1 OR owner = $n+2)
//
// Las columnas vienen de un switch cerrado sobre cats.Field, nunca del input.
func buildUpdate(id int64, p cats.Patch, scope cats.Scope) (string, []any) {
	var args []any
	param := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	sets := make([]string, 0, 5)
	for _, a := range p.Assignments() {
		switch a.Field {
		case cats.FieldName, cats.FieldWeight, cats.FieldFilename, cats.FieldBirthdate:
			sets = append(sets, string(a.Field)+" = "+param(a.Value))
		case cats.FieldCoords:
			coords := a.Value.(cats.Coordinates)
			sets = append(sets, fmt.Sprintf("coords = point(%s, %s)", param(coords.Lat), param(coords.Lng)))
		}
	}
	if len(sets) == 0 {
		return "", nil
	}

	where := fmt.Sprintf("cat_id = %s AND (%s OR owner = %s)", param(id), param(scope.Admin), param(scope.ActorID))
	return "UPDATE cat SET " + strings.Join(sets, ", ") + " WHERE " + where, args
}

func (r *CatsRepo) query(ctx context.Context, query string, args ...any) ([]cats.Cat, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cats.Cat, 0)
	for rows.Next() {
		c, err := scanCat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCat(s scanner) (cats.Cat, error) {
	var (
		c     cats.Cat
		owner []byte
	)
	if err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Weight,
		&c.Filename,
		&c.Birthdate,
		&c.Coords.Lat,
		&c.Coords.Lng,
		&owner,
	); err != nil {
		return cats.Cat{}, err
	}

	if err := json.Unmarshal(owner, &c.Owner); err != nil {
		return cats.Cat{}, fmt.Errorf("postgres: cat %d: owner: %w", c.ID, err)
	}
	return c, nil
}

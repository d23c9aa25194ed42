package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cats-api/internal/domain/cats"
)

// SQLite no tiene POINT: las coordenadas van en lat/lng. El dueño se arma con
// json_object para devolver la misma forma que el store Postgres.
const selectCats = `
	SELECT
		c.cat_id, c.cat_name, c.weight, c.filename, c.birthdate, c.lat, c.lng,
		json_object('user_id', u.user_id, 'user_name', u.user_name) AS owner
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
	c, err := scanCat(r.db.QueryRowContext(ctx, selectCats+` WHERE c.cat_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return cats.Cat{}, false, nil
	}
	if err != nil {
		return cats.Cat{}, false, err
	}
	return c, true, nil
}

func (r *CatsRepo) Create(ctx context.Context, in cats.NewCat) (int64, int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO cat (cat_name, weight, owner, filename, birthdate, lat, lng)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		in.Name,
		in.Weight,
		in.OwnerID,
		in.Filename,
		in.Birthdate.Format(cats.DateLayout),
		in.Coords.Lat,
		in.Coords.Lng,
	)
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM cat WHERE cat_id = ?`, id)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}

func (r *CatsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]cats.Cat, error) {
	return r.query(ctx, selectCats+` WHERE c.owner = ? ORDER BY c.cat_id`, ownerID)
}

// buildUpdate arma el SET sólo con los campos presentes; los nombres de columna
// salen de un switch cerrado, nunca del input.
func buildUpdate(id int64, p cats.Patch, scope cats.Scope) (string, []any) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 9)

	for _, a := range p.Assignments() {
		switch a.Field {
		case cats.FieldName, cats.FieldWeight, cats.FieldFilename:
			sets = append(sets, string(a.Field)+" = ?")
			args = append(args, a.Value)
		case cats.FieldBirthdate:
			sets = append(sets, "birthdate = ?")
			args = append(args, a.Value.(time.Time).Format(cats.DateLayout))
		case cats.FieldCoords:
			coords := a.Value.(cats.Coordinates)
			sets = append(sets, "lat = ?", "lng = ?")
			args = append(args, coords.Lat, coords.Lng)
		}
	}
	if len(sets) == 0 {
		return "", nil
	}

	args = append(args, id, scope.Admin, scope.ActorID)
	return fmt.Sprintf(`UPDATE cat SET %s WHERE cat_id = ? AND (? OR owner = ?)`, strings.Join(sets, ", ")), args
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
		c         cats.Cat
		birthdate string
		owner     string
	)
	if err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Weight,
		&c.Filename,
		&birthdate,
		&c.Coords.Lat,
		&c.Coords.Lng,
		&owner,
	); err != nil {
		return cats.Cat{}, err
	}

	bd, err := time.Parse(cats.DateLayout, birthdate)
	if err != nil {
		return cats.Cat{}, fmt.Errorf("sqlite: cat %d: birthdate %q: %w", c.ID, birthdate, err)
	}
	c.Birthdate = bd

	if err := json.Unmarshal([]byte(owner), &c.Owner); err != nil {
		return cats.Cat{}, fmt.Errorf("sqlite: cat %d: owner: %w", c.ID, err)
	}
	return c, nil
}

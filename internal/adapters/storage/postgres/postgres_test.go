package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"cats-api/internal/domain/cats"
	"cats-api/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdate_SingleAuthorizationPredicate(t *testing.T) {
	name := "Tom"
	weight := 3.5
	bd := time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC)
	coords := cats.Coordinates{Lat: 60.1, Lng: 24.9}

	query, args := buildUpdate(11, cats.Patch{Name: &name, Weight: &weight, Birthdate: &bd, Coords: &coords}, cats.Scope{ActorID: 4})

	assert.Equal(t,
		"UPDATE cat SET cat_name = $1, weight = $2, birthdate = $3, coords = point($4, $5) WHERE cat_id = $6 AND ($7 OR owner = $8)",
		query,
	)
	assert.Equal(t, []any{"Tom", 3.5, bd, 60.1, 24.9, int64(11), false, int64(4)}, args)

	// admin: misma query, sólo cambia el parámetro
	adminQuery, adminArgs := buildUpdate(11, cats.Patch{Name: &name, Weight: &weight, Birthdate: &bd, Coords: &coords}, cats.Scope{ActorID: 1, Admin: true})
	assert.Equal(t, query, adminQuery)
	assert.Equal(t, true, adminArgs[6])
}

func TestBuildUpdate_EmptyPatch(t *testing.T) {
	query, args := buildUpdate(1, cats.Patch{}, cats.Scope{})
	assert.Empty(t, query)
	assert.Nil(t, args)
}

func TestMapError(t *testing.T) {
	t.Run("foreign key", func(t *testing.T) {
		err := mapError(fmt.Errorf("insert: %w", &pgconn.PgError{
			Code:           codeForeignKeyViolation,
			TableName:      "cat",
			ConstraintName: "cat_owner_fkey",
		}))

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, 400, httpErr.Status)
		assert.Equal(t, "The referenced Owner does not exist", httpErr.Message)
	})

	t.Run("check", func(t *testing.T) {
		err := mapError(&pgconn.PgError{Code: codeCheckViolation, TableName: "cat", ConstraintName: "cat_weight_check"})
		assert.ErrorIs(t, err, errs.BadRequest)
		assert.Equal(t, "The Weight value does not meet required conditions", err.Error())
	})

	t.Run("not null", func(t *testing.T) {
		err := mapError(&pgconn.PgError{Code: codeNotNullViolation, ColumnName: "cat_name"})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, []errs.FieldError{{Field: "cat_name", Error: "is required"}}, httpErr.Errors)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		orig := errors.New("conn reset")
		assert.Same(t, orig, mapError(orig))
	})
}

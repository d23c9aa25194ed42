package postgres

import (
	"errors"
	"fmt"
	"strings"

	"cats-api/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de integridad que se reportan al cliente como 400.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// mapError convierte violaciones de constraints en errs.HTTPError; el resto pasa tal cual.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeForeignKeyViolation:
		entity := errs.Humanize(constraintColumn(pgErr.TableName, pgErr.ConstraintName, "_fkey"))
		if entity == "" {
			entity = "record"
		}
		return errs.NewBadRequestError(fmt.Sprintf("The referenced %s does not exist", entity)).WithCause(err)

	case codeNotNullViolation:
		field := strings.ToLower(pgErr.ColumnName)
		return errs.NewBadRequestError(
			fmt.Sprintf("The %s is required", errs.Humanize(field)),
			errs.FieldError{Field: field, Error: "is required"},
		).WithCause(err)

	case codeCheckViolation:
		field := constraintColumn(pgErr.TableName, pgErr.ConstraintName, "_check")
		if field == "" {
			return errs.NewBadRequestError("One or more values do not meet required conditions").WithCause(err)
		}
		return errs.NewBadRequestError(
			fmt.Sprintf("The %s value does not meet required conditions", errs.Humanize(field)),
		).WithCause(err)

	default:
		return err
	}
}

// constraintColumn extrae la columna de los nombres por defecto de Postgres:
// cat_owner_fkey -> owner, cat_weight_check -> weight.
func constraintColumn(table, constraint, suffix string) string {
	if !strings.HasSuffix(constraint, suffix) {
		return ""
	}
	col := strings.TrimSuffix(constraint, suffix)
	if table != "" {
		col = strings.TrimPrefix(col, table+"_")
	}
	return col
}

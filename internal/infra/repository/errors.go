package repository

import (
	"errors"

	"lab-reservation/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrCheckViolation      = "23514"
)

// classifyWriteErr maps constraint violations to their repository kind.
func classifyWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		case pgErrCheckViolation:
			return infra.WrapRepoErr(msg, err, infra.KindCheckViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}

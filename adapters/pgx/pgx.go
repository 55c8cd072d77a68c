package pgx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pverales/rosterd/core"
)

// Adapter implements core.StorageAdapter on a pgx connection pool.
type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.StorageAdapter = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}

const uniqueViolation = "23505"

// mapUniqueViolation translates a unique-constraint failure into the
// matching domain error so the service never sees raw SQLSTATE codes.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case "users_username_key":
		return core.ErrUsernameTaken
	case "users_email_key":
		return core.ErrEmailTaken
	default:
		return err
	}
}

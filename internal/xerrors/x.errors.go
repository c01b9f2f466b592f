package xerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Resolution outcomes. Callers branch with errors.Is; nothing in the
// resolution path returns an untyped failure.
var (
	ErrNotFound      = errors.New("profile not found")
	ErrUnavailable   = errors.New("backend unavailable")
	ErrTimeout       = errors.New("lookup timed out")
	ErrConfiguration = errors.New("invalid configuration")
	ErrInvalidInput  = errors.New("invalid input provided")
)

func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code // e.g. 23505 for unique_violation
	}
	return "unknown"
}

// IsTransient reports whether err is worth retrying: backend outages and
// timeouts, never a definitive not-found.
func IsTransient(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrTimeout)
}

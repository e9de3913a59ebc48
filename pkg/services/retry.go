package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stenobot-io/stenobot/ent"
)

// errStaleVersion marks a version-predicate miss inside a single attempt.
// Internal to the retry loops; callers see ErrOptimisticConflict once the
// budget is spent.
var errStaleVersion = errors.New("stale version")

// isOptimisticConflict reports a version-predicate miss.
func isOptimisticConflict(err error) bool {
	return errors.Is(err, errStaleVersion)
}

// PostgreSQL error codes that drive the optimistic retry loops.
const (
	pgSerializationFailure = "40001"
	pgUniqueViolation      = "23505"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isSerializationFailure reports a serializable-transaction conflict; the
// caller retries the whole transaction.
func isSerializationFailure(err error) bool {
	return pgErrorCode(err) == pgSerializationFailure
}

// isIntegrityViolation reports a unique constraint hit. The credit ledger's
// linearity indexes surface concurrent appends this way.
func isIntegrityViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation || ent.IsConstraintError(err)
}

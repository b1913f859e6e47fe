package repository

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgCheckViolation       = "23514"
	pgForeignKeyViolation  = "23503"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// pgCode returns the SQLSTATE of a driver error, or "".
func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

// conflictErr maps serialization and deadlock failures to ErrConcurrencyConflict.
func conflictErr(err error) error {
	switch pgCode(err) {
	case pgSerializationFailure, pgDeadlockDetected:
		return errors.Join(domain.ErrConcurrencyConflict, err)
	}
	return err
}

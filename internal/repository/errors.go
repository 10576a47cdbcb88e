package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
	"github.com/successxx/punctual/internal/domain"
)

const (
	codeUniqueViolation    = "23505"
	codeForeignKey         = "23503"
	codeExclusionViolation = "23P01"
)

// transientCodes are Postgres conditions a caller may retry with fresh input.
var transientCodes = map[pq.ErrorCode]struct{}{
	"55P03": {}, // lock_not_available
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
	"57014": {}, // query_canceled
	"57P01": {}, // admin_shutdown
	"53300": {}, // too_many_connections
}

func pqCode(err error) pq.ErrorCode {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// classify marks errors that mean "storage unreachable or busy" with domain.ErrStorageUnavailable.
func classify(err error) error {
	if err == nil {
		return nil
	}

	code := pqCode(err)
	if _, ok := transientCodes[code]; ok {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	if code != "" && code.Class() == "08" {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}

	return err
}

package mysql

import (
	"database/sql/driver"
	"errors"
	"fmt"

	godriver "github.com/go-sql-driver/mysql"

	"fondo-backend/internal/domain/uow"
)

// MySQL error numbers that mean "you lost a race, retry from a fresh read".
const (
	erLockDeadlock    = 1213
	erLockWaitTimeout = 1205
)

// translate maps driver-level failures onto the stable error kinds the
// usecases branch on. Anything else passes through untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var myErr *godriver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case erLockDeadlock, erLockWaitTimeout:
			return fmt.Errorf("%w: %v", uow.ErrConflict, err)
		}
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, godriver.ErrInvalidConn) {
		return fmt.Errorf("%w: %v", uow.ErrStoreUnavailable, err)
	}
	return err
}

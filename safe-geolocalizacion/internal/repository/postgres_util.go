package repository

import (
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/errs"
)

// checkAffected translates the write error and reports NotFound when no row matched
func checkAffected(res sql.Result, err error, op errs.Op, entity string, id int64) error {
	if err != nil {
		return errs.FromDB(err, op, entity)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return errs.NotFound(entity, id)
	}
	return nil
}

// Package errs holds the error kinds shared by every SAFE-Rescue service and the
// translation of PostgreSQL constraint violations into those kinds.
package errs

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	// ErrRemoteNotFound a referenced row owned by another service does not exist
	ErrRemoteNotFound = errors.New("referenced resource not found")
	// ErrUpstream another service could not be reached or answered with a server error
	ErrUpstream = errors.New("upstream service error")
)

// PostgreSQL SQLSTATE codes
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
	codeStringTooLong       = "22001"
)

func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func NotFound(entity string, id int64) error {
	return fmt.Errorf("%w: %s id=%d", ErrNotFound, entity, id)
}

func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func RemoteNotFound(entity string, id int64) error {
	return fmt.Errorf("%w: %s id=%d", ErrRemoteNotFound, entity, id)
}

func Upstream(service string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstream, service, err)
}

// Op distinguishes writes, since a foreign-key violation means different things for each
type Op int

const (
	OpInsert Op = iota
	OpUpdate
	OpDelete
)

// FromDB translates a repository error:
//   - sql.ErrNoRows -> ErrNotFound
//   - unique violation -> ErrConflict
//   - FK violation on delete (row still referenced) -> ErrConflict
//   - FK violation on insert/update (reference missing) -> ErrInvalidArgument
//   - not-null / check / too-long -> ErrInvalidArgument
//
// Other errors are returned unchanged. entity names the table for the message.
func FromDB(err error, op Op, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, entity)
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch string(pqErr.Code) {
	case codeUniqueViolation:
		return Conflict("%s already exists (%s)", entity, pqErr.Constraint)
	case codeForeignKeyViolation:
		if op == OpDelete {
			return Conflict("%s is still referenced by other records", entity)
		}
		return Invalid("%s references a record that does not exist (%s)", entity, pqErr.Constraint)
	case codeNotNullViolation, codeCheckViolation, codeStringTooLong:
		return Invalid("%s: %s", entity, pqErr.Message)
	}
	return err
}

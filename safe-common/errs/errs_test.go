package errs

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestFromDB(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "estado_nombre_key"}
	fk := &pq.Error{Code: "23503", Constraint: "region_id_pais_fkey"}
	tooLong := &pq.Error{Code: "22001", Message: "value too long for type character varying(50)"}
	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		op   Op
		want error
	}{
		{"no rows", sql.ErrNoRows, OpUpdate, ErrNotFound},
		{"unique on insert", unique, OpInsert, ErrConflict},
		{"unique on update", fmt.Errorf("wrapped: %w", unique), OpUpdate, ErrConflict},
		{"fk on insert", fk, OpInsert, ErrInvalidArgument},
		{"fk on delete", fk, OpDelete, ErrConflict},
		{"too long", tooLong, OpInsert, ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDB(tt.err, tt.op, "estado")
			assert.ErrorIs(t, got, tt.want)
		})
	}

	assert.Nil(t, FromDB(nil, OpInsert, "estado"))
	assert.Equal(t, other, FromDB(other, OpInsert, "estado"))
}

func TestConstructors(t *testing.T) {
	assert.ErrorIs(t, Invalid("nombre is required"), ErrInvalidArgument)
	assert.ErrorIs(t, NotFound("usuario", 3), ErrNotFound)
	assert.Contains(t, NotFound("usuario", 3).Error(), "usuario id=3")
	assert.ErrorIs(t, RemoteNotFound("direccion", 9), ErrRemoteNotFound)
	assert.ErrorIs(t, Upstream("registros", errors.New("timeout")), ErrUpstream)
}

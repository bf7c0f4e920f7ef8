package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestAssignmentsAndPredicate(t *testing.T) {
	q := &query{}
	set := &assignments{q: q}

	set.set("description", "desk")
	set.set("completed_status", false)
	where := ownedBy(q, 3, 9)

	assert.Equal(t, "description = $1, completed_status = $2", set.String())
	assert.Equal(t, "id = $3 AND user_id = $4", where.String())
	assert.Equal(t, []any{"desk", false, int64(9), int64(3)}, q.args)
}

func TestPredicate_Empty(t *testing.T) {
	p := &predicate{q: &query{}}
	assert.Equal(t, "TRUE", p.String())
}

func TestStoreError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		constraint bool
	}{
		{
			name:       "foreign key violation",
			err:        &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, Message: "violates foreign key"},
			wantCode:   pgerrcode.ForeignKeyViolation,
			constraint: true,
		},
		{
			name:       "string too long",
			err:        &pgconn.PgError{Code: pgerrcode.StringDataRightTruncationDataException},
			wantCode:   pgerrcode.StringDataRightTruncationDataException,
			constraint: false,
		},
		{
			name:       "connection failure",
			err:        errors.New("connection refused"),
			wantCode:   "",
			constraint: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storeError("create order", fmt.Errorf("insert: %w", tt.err))

			var se *StoreError
			assert.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantCode, se.Code)
			assert.Equal(t, tt.constraint, IsConstraintViolation(err))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "create order")
		})
	}
}

func TestIsConstraintViolation_NotStoreError(t *testing.T) {
	assert.False(t, IsConstraintViolation(ErrUserNotFound))
	assert.False(t, IsConstraintViolation(nil))
}

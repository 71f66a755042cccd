package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantCode       string
		wantConstraint string
	}{
		{
			name:           "unique violation",
			err:            &pgconn.PgError{Code: uniqueViolation, ConstraintName: pendingSlotIndex},
			wantCode:       uniqueViolation,
			wantConstraint: pendingSlotIndex,
		},
		{
			name:     "wrapped",
			err:      fmt.Errorf("insert: %w", &pgconn.PgError{Code: foreignKeyViolation}),
			wantCode: foreignKeyViolation,
		},
		{
			name: "not a server error",
			err:  errors.New("connection reset"),
		},
		{
			name: "nil",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, constraint := pgCode(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantConstraint, constraint)
		})
	}
}

package dbx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestHasCode(t *testing.T) {
	undefined := &pgconn.PgError{Code: CodeUndefinedTable, Message: `relation "avaliacoes" does not exist`}
	unique := &pgconn.PgError{Code: CodeUniqueViolation}

	tests := []struct {
		name      string
		err       error
		undefined bool
		unique    bool
	}{
		{"nil", nil, false, false},
		{"plain error", errors.New("boom"), false, false},
		{"undefined table", undefined, true, false},
		{"wrapped undefined table", fmt.Errorf("list reviews: %w", undefined), true, false},
		{"unique violation", unique, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUndefinedTable(tt.err); got != tt.undefined {
				t.Errorf("IsUndefinedTable() = %v, want %v", got, tt.undefined)
			}
			if got := IsUniqueViolation(tt.err); got != tt.unique {
				t.Errorf("IsUniqueViolation() = %v, want %v", got, tt.unique)
			}
		})
	}
}

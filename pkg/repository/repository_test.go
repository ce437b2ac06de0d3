package repository_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pathlight-health/casebook/pkg/repository"
)

var (
	errCaseNotFound  = errors.New("case not found")
	errDuplicateCase = errors.New("case already exists")
)

func TestMapError(t *testing.T) {
	infraErr := errors.New("connection reset")
	fkErr := &pgconn.PgError{Code: "23503"}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows becomes not found", sql.ErrNoRows, errCaseNotFound},
		{"unique violation becomes duplicate", &pgconn.PgError{Code: "23505"}, errDuplicateCase},
		{"other pg errors pass through", fkErr, fkErr},
		{"infrastructure errors pass through", infraErr, infraErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.in, errCaseNotFound, errDuplicateCase)
			if tt.want == nil {
				if got != nil {
					t.Errorf("MapError = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapErrorWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("insert case"), sql.ErrNoRows)
	got := repository.MapError(wrapped, errCaseNotFound, errDuplicateCase)
	if !errors.Is(got, errCaseNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) = %v, want %v", got, errCaseNotFound)
	}
}

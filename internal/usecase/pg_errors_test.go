package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			name:       "unique violation on matching constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "uq_active_appointment"},
			constraint: "uq_active_appointment",
			want:       true,
		},
		{
			name:       "constraint match is case insensitive",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "UQ_Active_Appointment"},
			constraint: "uq_active_appointment",
			want:       true,
		},
		{
			name:       "wrapped unique violation",
			err:        fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}),
			constraint: "email",
			want:       true,
		},
		{
			name:       "unique violation on different constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			constraint: "license_number",
			want:       false,
		},
		{
			name:       "foreign key violation is not a duplicate",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "uq_active_appointment"},
			constraint: "uq_active_appointment",
			want:       false,
		},
		{
			name:       "plain error",
			err:        errors.New("connection refused"),
			constraint: "uq_active_appointment",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateKeyError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("isDuplicateKeyError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsForeignKeyError(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "doctor_profiles_city_id_fkey"}
	if !isForeignKeyError(fkErr, "city") {
		t.Error("expected foreign key violation to match")
	}
	if isForeignKeyError(fkErr, "role") {
		t.Error("expected mismatched constraint to fail")
	}
	if isForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "city"}, "city") {
		t.Error("unique violation should not match foreign key check")
	}
}

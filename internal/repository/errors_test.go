package repository

import (
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	if !isUniqueViolation(err) {
		t.Error("expected unique violation to be classified")
	}
	if !isUniqueViolation(fmt.Errorf("inserting: %w", err)) {
		t.Error("expected wrapped unique violation to be classified")
	}

	if isUniqueViolation(nil) {
		t.Error("nil is not a unique violation")
	}
	if isUniqueViolation(ErrUserNotFound) {
		t.Error("plain error is not a unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}) {
		t.Error("foreign-key violation is not a unique violation")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	if !isForeignKeyViolation(err) {
		t.Error("expected foreign-key violation to be classified")
	}
	if !isForeignKeyViolation(fmt.Errorf("deleting: %w", err)) {
		t.Error("expected wrapped foreign-key violation to be classified")
	}

	if isForeignKeyViolation(nil) {
		t.Error("nil is not a foreign-key violation")
	}
	if isForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}) {
		t.Error("unique violation is not a foreign-key violation")
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a requested record does not exist in the database.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when the database rejects a value (check violation).
	ErrInvalidInput = errors.New("invalid input")
	// ErrDataAccess wraps every other store failure (connection, syntax, timeout).
	ErrDataAccess = errors.New("data access")
	// ErrUnknownUser is returned when a write references a user row that does not exist.
	ErrUnknownUser = errors.New("unknown user")
)

// userForeignKeys are the constraints pointing at users(id). Their names are
// fixed in the migrations.
var userForeignKeys = map[string]bool{
	"inquiry_status_events_updated_by_fkey": true,
	"whatsapp_messages_sent_by_fkey":        true,
}

// mapError converts pgx/pgconn errors to repository errors, prefixed with op.
// Context cancellation keeps its own identity so callers can tell it apart.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrDataAccess, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			if userForeignKeys[pgErr.ConstraintName] {
				return fmt.Errorf("%s: %w", op, ErrUnknownUser)
			}
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case "23514", "22P02": // check_violation, invalid_text_representation
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		}
	}

	return fmt.Errorf("%s: %w: %w", op, ErrDataAccess, err)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
)

// mapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled pass through unmapped.
func mapError(err error, table, word string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %q: %w", table, word, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %q: %w", table, word, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %q: %w", table, word, domain.ErrAlreadyExists)
		case "23514": // check_violation
			return fmt.Errorf("%s %q: %w", table, word, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %q: %w", table, word, err)
}

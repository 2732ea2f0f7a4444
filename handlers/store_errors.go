package handlers

import (
	"errors"
	"log/slog"
	"runtime/debug"

	"github.com/jackc/pgx/v5/pgconn"
)

const maxStackBytes = 2048

// logStoreError records the full server-side diagnostic for a persistence
// failure: the error message, the postgres error code and server message when
// present, the failing operation and a truncated stack. None of this detail
// ever reaches the client; handlers respond with a generic body.
func logStoreError(op string, err error, args ...any) {
	fields := []any{"operation", op, "error", err}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields = append(fields,
			"pg_code", pgErr.Code,
			"pg_message", pgErr.Message,
			"pg_detail", pgErr.Detail,
		)
	}

	stack := debug.Stack()
	if len(stack) > maxStackBytes {
		stack = stack[:maxStackBytes]
	}
	fields = append(fields, args...)
	fields = append(fields, "stack", string(stack))

	slog.Error("store operation failed", fields...)
}

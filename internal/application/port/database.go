package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider provides access to the preferences database.
// Implementations may open it lazily on first access.
type DatabaseProvider interface {
	// DB returns the database connection, initializing it if necessary.
	DB(ctx context.Context) (*sql.DB, error)

	// Close closes the database connection if it was initialized.
	Close() error

	// IsInitialized reports whether the database has been opened.
	IsInitialized() bool
}

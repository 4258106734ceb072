package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the database connection, opening it on
// first use so commands that never touch storage skip the setup cost.
type DatabaseProvider interface {
	// DB returns the database connection, initializing it if necessary.
	DB(ctx context.Context) (*sql.DB, error)

	// Close closes the database connection if it was initialized.
	Close() error

	// IsInitialized returns true if the database has been initialized.
	IsInitialized() bool
}

// Package dbpkg provides helpers to make db initialization and querying easier.
package dbpkg

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 5 * time.Second

// Setup opens a connection pool for the given driver and checks that the database is reachable.
func Setup(driver, source string) (*sql.DB, error) {
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

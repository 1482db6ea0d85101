// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/nz-walks/internal/config"
	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a database handle shared by all repositories. Besides the pool it
// carries the squirrel statement builder and the error classifier of the
// dialect it was opened with.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// newDB wraps conn with the builder and classifier matching dialect.
func newDB(conn *sql.DB, dialect string, log *logger.Logger) (*DB, error) {
	db := &DB{DB: conn, dialect: dialect, logger: log}

	switch dialect {
	case config.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case config.DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	return db, nil
}

// Open connects to the database selected by cfg's DSN.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Dialect() {
	case config.DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, cfg.DSN)
	}
}

// Dialect returns the dialect name the handle was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Ping verifies that the database still answers.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// classify returns the constraint kind violated by err.
func (db *DB) classify(err error) ErrorClassification {
	if err == nil || db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// writeError converts an error returned while executing and scanning a single
// row write into a repository error. notFound is returned for
// [sql.ErrNoRows]; the constraint mapping supplies sentinels for foreign key
// and unique violations.
func (db *DB) writeError(err error, notFound error, onForeignKey error, onUnique error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	switch db.classify(err) {
	case ForeignKeyViolation:
		if onForeignKey != nil {
			return fmt.Errorf("%w: %w", onForeignKey, err)
		}
	case UniqueViolation:
		if onUnique != nil {
			return fmt.Errorf("%w: %w", onUnique, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "foreign key", err: pgError(pgerrcode.ForeignKeyViolation), want: ForeignKeyViolation},
		{name: "restrict", err: pgError(pgerrcode.RestrictViolation), want: ForeignKeyViolation},
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "other pg code", err: pgError(pgerrcode.SyntaxError), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{
			name: "foreign key",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey},
			want: ForeignKeyViolation,
		},
		{
			name: "restrict on delete",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintTrigger},
			want: ForeignKeyViolation,
		},
		{
			name: "unique",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			want: UniqueViolation,
		},
		{
			name: "check",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck},
			want: Unclassified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_writeError(t *testing.T) {
	db, _ := newTestDB(t)
	errNotFound := errors.New("not found")
	errFK := errors.New("fk")
	errUnique := errors.New("unique")

	assert.Equal(t, errNotFound, db.writeError(sql.ErrNoRows, errNotFound, errFK, errUnique))
	assert.ErrorIs(t, db.writeError(pgError(pgerrcode.ForeignKeyViolation), errNotFound, errFK, errUnique), errFK)
	assert.ErrorIs(t, db.writeError(pgError(pgerrcode.UniqueViolation), errNotFound, errFK, errUnique), errUnique)

	// no mapping for the violation falls back to ErrExecutingQuery
	assert.ErrorIs(t, db.writeError(pgError(pgerrcode.UniqueViolation), errNotFound, errFK, nil), ErrExecutingQuery)
	assert.ErrorIs(t, db.writeError(errors.New("network"), errNotFound, errFK, errUnique), ErrExecutingQuery)
}

func TestNewDB_UnsupportedDialect(t *testing.T) {
	db, err := newDB(nil, "mysql", nil)
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func Test_sqliteDSN(t *testing.T) {
	tests := map[string]string{
		"file:walks.db":                   "file:walks.db?_foreign_keys=1",
		"sqlite://walks.db":               "file:walks.db?_foreign_keys=1",
		"file::memory:?cache=shared":      "file::memory:?cache=shared&_foreign_keys=1",
		"file:walks.db?_foreign_keys=off": "file:walks.db?_foreign_keys=off",
		"walks.db":                        "walks.db?_foreign_keys=1",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, sqliteDSN(in))
		})
	}
}

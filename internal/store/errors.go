// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrWalkNotFound is returned when no walk has the requested id.
	ErrWalkNotFound = errors.New("walk was not found")

	// ErrRegionNotFound is returned when no region has the requested id.
	ErrRegionNotFound = errors.New("region was not found")

	// ErrWalkDifficultyNotFound is returned when no walk difficulty has the
	// requested id.
	ErrWalkDifficultyNotFound = errors.New("walk difficulty was not found")

	// ErrUserNotFound is returned when the username is unknown or the
	// password does not match the stored hash.
	ErrUserNotFound = errors.New("no user was found")

	// ErrUserAlreadyExists is returned by Seed when the username is taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidReference is returned when a walk points at a region or walk
	// difficulty that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrRegionInUse is returned when deleting a region still referenced by
	// walks.
	ErrRegionInUse = errors.New("region is referenced by walks")

	// ErrWalkDifficultyInUse is returned when deleting a walk difficulty
	// still referenced by walks.
	ErrWalkDifficultyInUse = errors.New("walk difficulty is referenced by walks")

	// ErrRegionCodeExists is returned when a region code is already taken.
	ErrRegionCodeExists = errors.New("region code already exists")

	// ErrWalkDifficultyCodeExists is returned when a walk difficulty code is
	// already taken.
	ErrWalkDifficultyCodeExists = errors.New("walk difficulty code already exists")

	// ErrUnsupportedDialect is returned when the DSN selects no known driver.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

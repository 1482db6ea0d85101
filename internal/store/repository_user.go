// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It reads the "users" table and resolves role names through "user_roles".
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Authenticate finds the user by username (case-insensitive), checks password
// against the stored bcrypt hash and loads the user's role names.
//
// Error handling:
//   - unknown username or wrong password → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := r.findByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("func", "*userRepository.Authenticate").Msg("password does not match")
		return models.User{}, ErrUserNotFound
	}

	roles, err := r.findRoles(ctx, user.ID)
	if err != nil {
		return models.User{}, err
	}
	user.Roles = roles

	return user, nil
}

// Seed creates user with its roles in a single transaction.
func (r *userRepository) Seed(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := r.findByUsername(ctx, user.Username)
	switch {
	case err == nil:
		return models.User{}, ErrUserAlreadyExists
	case !errors.Is(err, ErrUserNotFound):
		return models.User{}, err
	}

	userQuery, userArgs, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Seed").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, userQuery, userArgs...); err != nil {
		log.Err(err).Str("func", "*userRepository.Seed").Str("username", user.Username).Msg("error inserting user")
		if r.db.classify(err) == UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if len(user.Roles) > 0 {
		rolesQuery, rolesArgs, buildErr := buildInsertUserRolesQuery(r.db.builder, user.ID, user.Roles)
		if buildErr != nil {
			return models.User{}, buildErr
		}

		if _, err = tx.ExecContext(ctx, rolesQuery, rolesArgs...); err != nil {
			log.Err(err).Str("func", "*userRepository.Seed").Strs("roles", user.Roles).Msg("error inserting user roles")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.Seed").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

func (r *userRepository) findByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan found user from db
	err = row.Scan(&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) findRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserRolesQuery(r.db.builder, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findRoles").Msg("error querying user roles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	roles := make([]string, 0, 2)
	for rows.Next() {
		var role string
		if err = rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		roles = append(roles, role)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roles, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/nz-walks/internal/config"
	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/store"
	"github.com/MKhiriev/nz-walks/internal/utils"
	"github.com/MKhiriev/nz-walks/internal/validators"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// knownRoles lists the role names present in the roles table.
var knownRoles = []string{models.RoleReader, models.RoleWriter}

// authService is the concrete implementation of AuthService.
// It verifies credentials through a UserRepository and issues and parses
// HS256 JWT tokens carrying the user's identity and roles.
type authService struct {
	// userRepository looks up and seeds accounts.
	userRepository store.UserRepository
	// validator checks that login input carries a username and a password.
	validator validators.Validator
	// idGenerator assigns identifiers to seeded users.
	idGenerator IDGenerator
	// tokenParams holds the issuer, audience, lifetime and signing key used
	// for every issued and parsed token.
	tokenParams utils.TokenParams
	// hashCost is the bcrypt cost applied to seeded passwords.
	hashCost int
	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		idGenerator:    idGenerator,
		tokenParams: utils.TokenParams{
			Issuer:   cfg.TokenIssuer,
			Audience: cfg.TokenAudience,
			Duration: cfg.TokenDuration,
			SignKey:  cfg.TokenSignKey,
		},
		hashCost: bcrypt.DefaultCost,
		logger:   logger,
	}
}

// Authenticate verifies the username and password pair.
//
// Returns the user with its roles or:
//   - ErrInvalidCredentials if the username or password is blank or no
//     user matches.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Info().Err(err).Msg("blank credentials")
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.Authenticate(ctx, strings.TrimSpace(credentials.Username), credentials.Password)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("username", credentials.Username).Msg("invalid credentials")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user authentication failed")
		return models.User{}, fmt.Errorf("user authentication failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the configured issuer and audience, the user's id as
// subject, its names, email and roles, and expires after the configured
// duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenParams, user)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired. Every other validation failure
// (bad signature, wrong issuer or audience, malformed) yields
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenParams)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// SeedUsers hashes each configured password with bcrypt and stores the
// account. Accounts whose username is already taken are left untouched.
//
// Role names must be known ("reader", "writer"); an unknown role aborts
// seeding with ErrUnknownRole before anything is stored.
func (a *authService) SeedUsers(ctx context.Context, users []config.SeedUser) error {
	log := logger.FromContext(ctx)

	for _, seed := range users {
		for _, role := range seed.Roles {
			if !slices.Contains(knownRoles, role) {
				return fmt.Errorf("%w: %q for user %q", ErrUnknownRole, role, seed.Username)
			}
		}
	}

	for _, seed := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), a.hashCost)
		if err != nil {
			return fmt.Errorf("error hashing password of user %q: %w", seed.Username, err)
		}

		user := models.User{
			ID:           a.idGenerator.Generate(),
			Username:     seed.Username,
			Email:        seed.Email,
			FirstName:    seed.FirstName,
			LastName:     seed.LastName,
			PasswordHash: string(hash),
			Roles:        seed.Roles,
		}

		_, err = a.userRepository.Seed(ctx, user)
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Debug().Str("username", seed.Username).Msg("seed user already exists")
			continue
		}
		if err != nil {
			return fmt.Errorf("error seeding user %q: %w", seed.Username, err)
		}

		log.Info().Str("username", seed.Username).Strs("roles", seed.Roles).Msg("seed user created")
	}

	return nil
}

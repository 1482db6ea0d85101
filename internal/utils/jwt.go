// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/nz-walks/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// TokenParams holds the settings shared by token generation and validation.
type TokenParams struct {
	Issuer   string
	Audience string
	Duration time.Duration
	SignKey  string
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for user.
//
// The token includes the following claims:
//   - Issuer    (iss): params.Issuer
//   - Audience  (aud): params.Audience
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus params.Duration
//   - given_name, family_name, email and roles from the user record
//
// Returns an error if issuer, duration or sign key are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(params, user)
func GenerateJWTToken(params TokenParams, user models.User) (models.Token, error) {
	if params.Issuer == "" || params.Duration <= 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		GivenName:  user.FirstName,
		FamilyName: user.LastName,
		Email:      user.Email,
		Roles:      user.Roles,
	}
	if params.Audience != "" {
		claims.Audience = jwt.ClaimStrings{params.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: user.ID, Roles: user.Roles}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification with params.SignKey (HS256 only)
//   - Issuer (iss) and, when configured, audience (aud) checks
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim conversion to a UUID
//
// The returned error wraps the jwt/v5 sentinel (for example
// [jwt.ErrTokenExpired]) so callers can classify it with errors.Is.
func ValidateAndParseJWTToken(tokenString string, params TokenParams) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithIssuer(params.Issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if params.Audience != "" {
		opts = append(opts, jwt.WithAudience(params.Audience))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Roles: claims.Roles}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

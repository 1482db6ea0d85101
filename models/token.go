// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"slices"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT claim set issued on login.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, iss, aud,
// exp, iat) and adds the profile and role claims consumed by the API.
type Claims struct {
	jwt.RegisteredClaims

	GivenName  string   `json:"given_name,omitempty"`
	FamilyName string   `json:"family_name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Roles      []string `json:"roles,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`

	// Roles is a copy of the "roles" claim.
	Roles []string `json:"-"`
}

// HasRole reports whether the token carries the given role claim.
func (t Token) HasRole(role string) bool {
	return slices.Contains(t.Roles, role)
}

// GetUserID extracts the user identifier from the token's "sub" claim.
//
// Returns an error if the token holds no claims, the subject is missing, or
// it is not a valid UUID.
func (t *Token) GetUserID() (uuid.UUID, error) {
	if t.Token == nil || t.Claims == nil {
		return uuid.Nil, fmt.Errorf("error extracting UserID from token: no claims")
	}

	subject, err := t.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting UserID from token to uuid: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// RoleWriter is the role that gates every mutating endpoint.
const RoleWriter = "writer"

// RoleReader is granted to every seeded account by default.
const RoleReader = "reader"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID uuid.UUID `json:"-"`

	// Username is the login identifier. Matching is case-insensitive.
	Username string `json:"username"`

	// Email is the e-mail address of the user, embedded into issued tokens.
	Email string `json:"email"`

	// FirstName and LastName are embedded into issued tokens as
	// given_name / family_name claims.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Roles lists the role names granted to the user.
	Roles []string `json:"roles"`
}

// HasRole reports whether role is one of the user's roles.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the username/password pair presented at login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

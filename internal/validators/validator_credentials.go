// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/nz-walks/models"
)

// CredentialsValidator checks that login input carries both a username and
// a password.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(_ context.Context, obj any, fields ...string) error {
	credentials, ok := obj.(models.Credentials)
	if !ok {
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	errs := NewValidationErrors()
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(credentials.Username) == "" {
				errs.Add(FieldUsername, requiredMessage(FieldUsername))
			}
		case FieldPassword:
			if credentials.Password == "" {
				errs.Add(FieldPassword, requiredMessage(FieldPassword))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.OrNil()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field names as reported to API clients. They are also passed to Validate
// to restrict validation to a subset of fields.
const (
	FieldName             = "Name"
	FieldCode             = "Code"
	FieldLength           = "Length"
	FieldRegionID         = "RegionId"
	FieldWalkDifficultyID = "WalkDifficultyId"
	FieldUsername         = "Username"
	FieldPassword         = "Password"
)

func requiredMessage(field string) string {
	return field + " is required."
}

func invalidMessage(field string) string {
	return field + " is invalid."
}

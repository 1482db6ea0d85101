// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dto

// LoginRequest is the body of POST /Authentication/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

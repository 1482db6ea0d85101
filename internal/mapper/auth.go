// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"github.com/MKhiriev/nz-walks/models"
	"github.com/MKhiriev/nz-walks/models/dto"
)

func LoginRequestToCredentials(request dto.LoginRequest) models.Credentials {
	return models.Credentials{
		Username: request.Username,
		Password: request.Password,
	}
}

func TokenToLoginResponse(token models.Token) dto.LoginResponse {
	return dto.LoginResponse{Token: token.SignedString}
}

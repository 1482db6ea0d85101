// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/service"
	"github.com/MKhiriev/nz-walks/internal/store"
	"github.com/MKhiriev/nz-walks/internal/utils"
	"github.com/MKhiriev/nz-walks/internal/validators"
	"github.com/MKhiriev/nz-walks/models/dto"
)

const (
	invalidCredentialsMessage = "Username or Password is incorrect."
	validationProblemTitle    = "One or more validation errors occurred."
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:      http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusBadRequest,
	ErrInvalidJSON:                http.StatusBadRequest,

	service.ErrTokenIsExpired:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrForbidden:                        http.StatusForbidden,

	store.ErrWalkNotFound:           http.StatusNotFound,
	store.ErrRegionNotFound:         http.StatusNotFound,
	store.ErrWalkDifficultyNotFound: http.StatusNotFound,

	store.ErrInvalidReference:         http.StatusBadRequest,
	store.ErrRegionInUse:              http.StatusConflict,
	store.ErrWalkDifficultyInUse:      http.StatusConflict,
	store.ErrRegionCodeExists:         http.StatusConflict,
	store.ErrWalkDifficultyCodeExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap overrides the response text of a matched error.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials: invalidCredentialsMessage,
}

// statusFromError returns the status of the first mapped sentinel err wraps
// and that sentinel. Unmapped errors are 500 with a nil target.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err with the request logger and writes the mapped
// response. Validation failures become a ValidationProblem document; 5xx
// responses never expose err.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var verrs *validators.ValidationErrors
	if errors.As(err, &verrs) {
		log.Info().Err(err).Msg("request failed validation")
		writeValidationProblem(w, verrs.Fields)
		return
	}

	status, target := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg("request rejected")

	message, ok := errorMessageMap[target]
	if !ok {
		message = target.Error()
	}
	http.Error(w, message, status)
}

func writeValidationProblem(w http.ResponseWriter, fields map[string][]string) {
	utils.WriteJSON(w, dto.ValidationProblem{
		Title:  validationProblemTitle,
		Status: http.StatusBadRequest,
		Errors: fields,
	}, http.StatusBadRequest)
}

// Package httpx holds the JSON request/response helpers shared by the HTTP
// services.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pick6/go/internal/apperrors"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string         `json:"error"`
	Kind  apperrors.Kind `json:"kind"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// WriteError maps an error's kind onto an HTTP status and writes the JSON
// error body. Internal errors are logged and masked.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperrors.KindOf(err)
	msg := err.Error()

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		msg = appErr.Msg
	}

	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		msg = "internal server error"
	}

	WriteJSON(w, status, ErrorBody{Error: msg, Kind: kind})
}

func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindInvalidState:
		return http.StatusBadRequest
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.Newf(apperrors.KindValidation, "invalid request body: %v", err)
	}
	return nil
}

// PathUUID parses a UUID path value from the request.
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, apperrors.Newf(apperrors.KindValidation, "invalid %s", name)
	}
	return id, nil
}

// PathInt parses an integer path value from the request.
func PathInt(r *http.Request, name string) (int, error) {
	n, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, apperrors.Newf(apperrors.KindValidation, "invalid %s", name)
	}
	return n, nil
}

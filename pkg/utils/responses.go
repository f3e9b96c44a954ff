package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies read by DecodeJSON.
const maxBodyBytes = 1 << 20

// ErrorCode is the machine-readable reason attached to failed responses.
type ErrorCode string

const (
	CodeInvalidRequest    ErrorCode = "invalid_request"
	CodeValidationFailed  ErrorCode = "validation_failed"
	CodeNotFound          ErrorCode = "not_found"
	CodeVenueUnavailable  ErrorCode = "venue_unavailable"
	CodeVenueBusy         ErrorCode = "venue_busy"
	CodeInvalidTransition ErrorCode = "invalid_transition"
	CodeBookingClosed     ErrorCode = "booking_closed"
	CodeInternal          ErrorCode = "internal_error"
)

type Response struct {
	Status  bool      `json:"status"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code,omitempty"`
	Data    any       `json:"data,omitempty"`
	Errors  any       `json:"errors,omitempty"`
}

func writeResponse(w http.ResponseWriter, httpStatus int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(body)
}

// DecodeJSON reads a single JSON document from the request body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("decode body: unexpected data after JSON document")
	}
	return nil
}

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	writeResponse(w, http.StatusOK, Response{Status: true, Message: message, Data: data})
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	writeResponse(w, http.StatusCreated, Response{Status: true, Message: message, Data: data})
}

// ResponseError writes a failed envelope with its error code.
func ResponseError(w http.ResponseWriter, httpStatus int, code ErrorCode, message string, errors any) {
	writeResponse(w, httpStatus, Response{Message: message, Code: code, Errors: errors})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseError(w, http.StatusBadRequest, CodeInvalidRequest, message, errors)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, CodeNotFound, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, CodeInternal, message, nil)
}

package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/logger"
	"github.com/ykatyhoney/sunflower-land/internal/session"
)

// ErrorResponse represents an error response. Item is set when an event was
// turned down for exceeding a session limit.
type ErrorResponse struct {
	Error string `json:"error"`
	Item  string `json:"item,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing the header so an encoding failure can still
	// become a 500.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps service errors to an HTTP status and a
// response body. Handler rule violations keep their exact reason so the
// player sees why the action failed.
func mapServiceErrorToUserMessage(err error) (int, ErrorResponse) {
	var progress *session.ProgressError

	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
	case domain.IsRuleViolation(err):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ruleReason(err)}
	case errors.As(err, &progress):
		return http.StatusConflict, ErrorResponse{Error: ErrMsgProgressError, Item: progress.Verdict.Item}
	case errors.Is(err, domain.ErrUnknownEventType):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgUnknownEventError}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidEventError}
	case errors.Is(err, domain.ErrFarmNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgFarmNotFoundError}
	case errors.Is(err, domain.ErrVersionConflict):
		return http.StatusConflict, ErrorResponse{Error: ErrMsgConflictError}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
}

// ruleReason returns the innermost rule violation message, dropping any
// wrapping context added on the way up
func ruleReason(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if domain.IsRuleViolation(e) && errors.Unwrap(e) == nil {
			return e.Error()
		}
	}
	return err.Error()
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, body := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "action", action, "error", err)
	} else {
		log.Info(LogMsgServiceError, "action", action, "status", status, "error", err)
	}

	respondJSON(w, status, body)
}

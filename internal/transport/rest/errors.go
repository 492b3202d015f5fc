package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Fields  []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// handleError maps a service error onto the HTTP status and {code, message}
// body. Coded business errors keep their code; a lock conflict is a 400.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, status, "INTERNAL", "internal server error")
		return
	}

	resp := errorResponse{Code: defaultCode(status), Message: err.Error()}

	var coded *domain.CodedError
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &coded):
		resp.Code = coded.Code
		resp.Message = coded.Message
	case errors.As(err, &verr):
		resp.Code = "VALIDATION_ERROR"
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
	}

	writeJSON(w, status, resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrLocked):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func defaultCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	}
	return "INTERNAL"
}

// decodeBody decodes a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return false
	}
	return true
}

package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/platform/logging"
)

// ProblemContentType is the media type of RFC 9457 responses.
const ProblemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is a single field-level message, used both in problem
// responses and in journey step responses.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statuses maps domain sentinels to response codes, first match wins.
var statuses = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

func statusFor(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// problem builds a bare problem for status. The instance is the request
// path only; query strings can carry sponsor tokens.
func problem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.URL.Path,
	}
}

// NewErrorResponse describes err as a problem. Errors that map to no domain
// sentinel become a 500 whose detail is withheld.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		return problem(r, status, "")
	}

	resp := problem(r, status, err.Error())
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as a problem response.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteStatusResponse writes a problem for a status with no domain error
// behind it, such as a request timeout.
func WriteStatusResponse(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, problem(r, status, detail))
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

// validationDetails lists fields under "body.", sorted by location.
func validationDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}

// FieldErrorDetails flattens journey validation errors into one detail per
// message, in the order the fields failed.
func FieldErrorDetails(errs *domain.FieldErrors) []ErrorDetail {
	if errs == nil || errs.Empty() {
		return nil
	}
	details := make([]ErrorDetail, 0, errs.Len())
	for _, field := range errs.Fields() {
		for _, msg := range errs.On(field) {
			details = append(details, ErrorDetail{Location: field, Message: msg})
		}
	}
	return details
}

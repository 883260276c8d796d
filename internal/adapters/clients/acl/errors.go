// Package acl is the anti-corruption layer in front of the downstream
// constituency lookup API. Wire formats live in the constituency
// subpackage; status and error mapping shared by every call lives here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
)

// maxProblemBytes bounds how much of an error body is decoded.
const maxProblemBytes = 64 << 10

// problem is the RFC 9457 body the downstream API sends on failure.
type problem struct {
	Detail string         `json:"detail"`
	Errors []problemField `json:"errors"`
}

type problemField struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statusError turns an unexpected downstream response into a domain error.
// The problem detail, when present, becomes the message; field errors on a
// 400 or 422 become a *domain.ValidationError.
func statusError(resp *http.Response) error {
	p := readProblem(resp)
	msg := p.Detail
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	if isInvalid(resp.StatusCode) && len(p.Errors) > 0 {
		return p.validationError()
	}
	if sentinel := sentinelFor(resp.StatusCode); sentinel != nil {
		return fmt.Errorf("%s: %w", msg, sentinel)
	}
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
}

func isInvalid(code int) bool {
	return code == http.StatusBadRequest || code == http.StatusUnprocessableEntity
}

// sentinelFor returns the domain error a status maps to, or nil.
func sentinelFor(code int) error {
	switch {
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case isInvalid(code):
		return domain.ErrValidation
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return domain.ErrForbidden
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return nil
	}
}

// readProblem decodes a problem+json body. Any other body, or one that
// fails to decode, yields the zero problem.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mt != "application/problem+json" {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProblemBytes)).Decode(&p); err != nil {
		return problem{}
	}
	return p
}

// validationError keys field messages by bare field name, so
// "path.postcode" becomes "postcode".
func (p problem) validationError() *domain.ValidationError {
	fields := make(map[string]string, len(p.Errors))
	for _, f := range p.Errors {
		name := f.Location
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
		fields[name] = f.Message
	}
	return &domain.ValidationError{Fields: fields}
}

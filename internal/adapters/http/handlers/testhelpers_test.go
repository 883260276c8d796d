package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validPetition() *petition.Petition {
	p := petition.New(petition.Attributes{
		Action:     "Fund more public libraries",
		Background: "Libraries are closing across the country.",
		Creator:    signature.Attributes{Name: "Carol", Email: "carol@example.com"},
	})
	p.ID = 1
	p.CreatedAt = testTime
	p.UpdatedAt = testTime
	return p
}

func validSignature() *signature.Signature {
	s := signature.New(1, signature.Attributes{Name: "Jo", Email: "jo@example.com"})
	s.ID = 7
	s.CreatedAt = testTime
	return s
}

func fieldErrors(field, msg string) *domain.FieldErrors {
	var errs domain.FieldErrors
	errs.Add(field, msg)
	return &errs
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

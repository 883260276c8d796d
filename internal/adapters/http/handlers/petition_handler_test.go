package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
	"github.com/jsamuelsen11/petitions-service/mocks"
)

func newPetitionHandler(t *testing.T) (*handlers.PetitionHandler, *mocks.MockPetitionService) {
	t.Helper()
	svc := mocks.NewMockPetitionService(t)
	return handlers.NewPetitionHandler(svc), svc
}

// --- ListPetitions ---

func TestListPetitions_Success(t *testing.T) {
	t.Parallel()
	h, svc := newPetitionHandler(t)

	svc.EXPECT().ListPetitions(mock.Anything, petition.Filter{State: petition.StateOpen, Limit: 5}).
		Return([]petition.Petition{*validPetition()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/petitions?state=open&limit=5", nil)
	h.ListPetitions(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.PetitionListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListPetitions_InvalidLimit(t *testing.T) {
	t.Parallel()

	for _, limit := range []string{"abc", "0", "-3"} {
		t.Run(limit, func(t *testing.T) {
			t.Parallel()
			h, _ := newPetitionHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/petitions?limit="+limit, nil)
			h.ListPetitions(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestListPetitions_InvalidState(t *testing.T) {
	t.Parallel()
	h, svc := newPetitionHandler(t)

	svc.EXPECT().ListPetitions(mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("state", `unknown petition state "archived"`))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/petitions?state=archived", nil)
	h.ListPetitions(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.state" {
		t.Errorf("Errors = %+v, want one state error", resp.Errors)
	}
}

// --- GetPetition ---

func TestGetPetition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setup      func(*mocks.MockPetitionService)
		wantStatus int
	}{
		{
			name: "found",
			id:   "1",
			setup: func(svc *mocks.MockPetitionService) {
				svc.EXPECT().GetPetition(mock.Anything, int64(1)).Return(validPetition(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "99",
			setup: func(svc *mocks.MockPetitionService) {
				svc.EXPECT().GetPetition(mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{name: "bad id", id: "abc", setup: func(*mocks.MockPetitionService) {}, wantStatus: http.StatusBadRequest},
		{name: "zero id", id: "0", setup: func(*mocks.MockPetitionService) {}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newPetitionHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/petitions/"+tt.id, nil)
			req = withChiParams(req, map[string]string{"id": tt.id})
			h.GetPetition(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- CreatePetition ---

func TestCreatePetition_Steps(t *testing.T) {
	t.Parallel()

	stored := validPetition()

	tests := []struct {
		name       string
		step       *ports.PetitionStep
		wantStatus int
		wantStage  string
	}{
		{
			name:       "moves forward",
			step:       &ports.PetitionStep{Stage: "replay-petition", Errors: &domain.FieldErrors{}, Petition: stored},
			wantStatus: http.StatusOK,
			wantStage:  "replay-petition",
		},
		{
			name:       "stays with errors",
			step:       &ports.PetitionStep{Stage: "petition", Errors: fieldErrors("action", "is required"), Petition: stored},
			wantStatus: http.StatusUnprocessableEntity,
			wantStage:  "petition",
		},
		{
			name:       "complete",
			step:       &ports.PetitionStep{Stage: "done", Complete: true, Errors: &domain.FieldErrors{}, Petition: stored},
			wantStatus: http.StatusCreated,
			wantStage:  "done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newPetitionHandler(t)

			svc.EXPECT().CreatePetition(mock.Anything,
				ports.StepInput{Stage: "petition", Move: "next", RemoteIP: "203.0.113.9"},
				mock.MatchedBy(func(a petition.Attributes) bool {
					return a.Action == "Fund more public libraries" && a.Creator.Email == "carol@example.com"
				}),
			).Return(tt.step, nil)

			body := jsonBody(t, map[string]any{
				"stage": "petition",
				"move":  "next",
				"petition": map[string]any{
					"action":            "Fund more public libraries",
					"creator_signature": map[string]any{"email": "carol@example.com"},
				},
			})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/petitions", body)
			req.RemoteAddr = "203.0.113.9:51234"
			h.CreatePetition(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			resp := decodeJSON[dto.StepResponse](t, rec)
			if resp.Stage != tt.wantStage {
				t.Errorf("Stage = %q, want %q", resp.Stage, tt.wantStage)
			}
			if resp.Petition == nil {
				t.Error("Petition missing from step response")
			}
		})
	}
}

func TestCreatePetition_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newPetitionHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/petitions", bytes.NewBufferString("{"))
	h.CreatePetition(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreatePetition_BodyTooLarge(t *testing.T) {
	t.Parallel()
	h, _ := newPetitionHandler(t)

	large := `{"petition":{"background":"` + strings.Repeat("x", 70<<10) + `"}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/petitions", strings.NewReader(large))
	h.CreatePetition(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreatePetition_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newPetitionHandler(t)

	svc.EXPECT().CreatePetition(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/petitions", jsonBody(t, map[string]any{}))
	h.CreatePetition(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- SignPetition ---

func TestSignPetition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setup      func(*mocks.MockPetitionService)
		wantStatus int
	}{
		{
			name: "complete",
			id:   "1",
			setup: func(svc *mocks.MockPetitionService) {
				svc.EXPECT().SignPetition(mock.Anything, int64(1), mock.Anything,
					signature.Attributes{Name: "Jo", Email: "jo@example.com"}).
					Return(&ports.SignatureStep{Stage: "done", Complete: true, Signature: validSignature()}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			id:   "1",
			setup: func(svc *mocks.MockPetitionService) {
				svc.EXPECT().SignPetition(mock.Anything, int64(1), mock.Anything, mock.Anything).
					Return(&ports.SignatureStep{
						Stage:     "signer",
						Errors:    fieldErrors("email", signature.MsgAlreadySigned),
						Signature: validSignature(),
					}, nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "petition closed",
			id:   "1",
			setup: func(svc *mocks.MockPetitionService) {
				svc.EXPECT().SignPetition(mock.Anything, int64(1), mock.Anything, mock.Anything).
					Return(nil, domain.ErrConflict)
			},
			wantStatus: http.StatusConflict,
		},
		{name: "bad id", id: "x", setup: func(*mocks.MockPetitionService) {}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newPetitionHandler(t)
			tt.setup(svc)

			body := jsonBody(t, map[string]any{
				"stage":     "replay-email",
				"move":      "next",
				"signature": map[string]any{"name": "Jo", "email": "jo@example.com"},
			})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/petitions/"+tt.id+"/signatures", body)
			req = withChiParams(req, map[string]string{"id": tt.id})
			h.SignPetition(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- SponsorPetition ---

func TestSponsorPetition(t *testing.T) {
	t.Parallel()
	h, svc := newPetitionHandler(t)

	sig := validSignature()
	sponsorID := int64(3)
	sig.SponsorID = &sponsorID

	svc.EXPECT().SponsorPetition(mock.Anything, "tok-123", mock.Anything, mock.Anything).
		Return(&ports.SignatureStep{Stage: "replay-email", Signature: sig}, nil)

	body := jsonBody(t, map[string]any{"stage": "signer", "move": "next", "signature": map[string]any{"name": "Jo"}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sponsors/tok-123/signatures", body)
	req = withChiParams(req, map[string]string{"token": "tok-123"})
	h.SponsorPetition(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.StepResponse](t, rec)
	if resp.Signature == nil || resp.Signature.PetitionID != 1 {
		t.Errorf("Signature = %+v, want petition 1", resp.Signature)
	}
}

func TestSponsorPetition_UnknownToken(t *testing.T) {
	t.Parallel()
	h, svc := newPetitionHandler(t)

	svc.EXPECT().SponsorPetition(mock.Anything, "nope", mock.Anything, mock.Anything).
		Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sponsors/nope/signatures", jsonBody(t, map[string]any{}))
	req = withChiParams(req, map[string]string{"token": "nope"})
	h.SponsorPetition(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- ValidateSignature ---

func TestValidateSignature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		setup      func(*mocks.MockPetitionService)
		wantStatus int
	}{
		{
			name: "confirmed",
			body: map[string]string{"token": "abc"},
			setup: func(svc *mocks.MockPetitionService) {
				svc.EXPECT().ValidateSignature(mock.Anything, int64(7), "abc").Return(validSignature(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong token",
			body: map[string]string{"token": "zzz"},
			setup: func(svc *mocks.MockPetitionService) {
				svc.EXPECT().ValidateSignature(mock.Anything, int64(7), "zzz").Return(nil, domain.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing token",
			body:       map[string]string{},
			setup:      func(*mocks.MockPetitionService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newPetitionHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/signatures/7/validation", jsonBody(t, tt.body))
			req = withChiParams(req, map[string]string{"id": "7"})
			h.ValidateSignature(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- ModeratePetition ---

func TestModeratePetition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		decision   string
		setup      func(*mocks.MockPetitionService)
		wantStatus int
	}{
		{
			name:     "publish",
			decision: "publish",
			setup: func(svc *mocks.MockPetitionService) {
				p := validPetition()
				p.State = petition.StateOpen
				svc.EXPECT().ModeratePetition(mock.Anything, int64(1), petition.DecisionPublish).Return(p, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:     "wrong state",
			decision: "publish",
			setup: func(svc *mocks.MockPetitionService) {
				svc.EXPECT().ModeratePetition(mock.Anything, int64(1), petition.DecisionPublish).
					Return(nil, domain.ErrConflict)
			},
			wantStatus: http.StatusConflict,
		},
		{name: "unknown decision", decision: "archive", setup: func(*mocks.MockPetitionService) {}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newPetitionHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/petitions/1/moderation",
				jsonBody(t, map[string]string{"decision": tt.decision}))
			req = withChiParams(req, map[string]string{"id": "1"})
			h.ModeratePetition(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

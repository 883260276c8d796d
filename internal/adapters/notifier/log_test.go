package notifier_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/notifier"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
)

func newBufferedNotifier() (*notifier.LogNotifier, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return notifier.NewLogNotifier(logger), &buf
}

func TestRedactToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"empty", "", ""},
		{"short", "abcd1234", "********"},
		{"uuid", "0b6f9c6e-2f0a-4d3c-9b1e-7a1c2d3e4f5a", strings.Repeat("*", 32) + "4f5a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := notifier.RedactToken(tt.token); got != tt.want {
				t.Errorf("RedactToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestLogNotifier_PetitionCreated(t *testing.T) {
	t.Parallel()

	n, buf := newBufferedNotifier()

	p := petition.New(petition.Attributes{
		Action:        "Plant more trees",
		SponsorEmails: []string{"sue@example.com"},
		Creator:       signature.Attributes{Name: "Carol", Email: "carol@example.com"},
	})
	p.ID = 7
	p.CreatorSignature.ID = 8
	p.Sponsors = []signature.Sponsor{signature.NewSponsor(7, "sue@example.com")}

	if err := n.PetitionCreated(context.Background(), p); err != nil {
		t.Fatalf("PetitionCreated() error = %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("logged %d lines, want 2 (creator and one sponsor)", got)
	}
	for _, secret := range []string{p.CreatorSignature.Token, p.Sponsors[0].Token, "carol@example.com", "sue@example.com"} {
		if strings.Contains(out, secret) {
			t.Errorf("output contains %q, want it redacted:\n%s", secret, out)
		}
	}
	if !strings.Contains(out, `"sponsor invitation requested"`) {
		t.Errorf("output = %q, want a sponsor invitation", out)
	}
}

func TestLogNotifier_SignatureCreated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sponsor  bool
		wantKind string
	}{
		{"public signer", false, `"kind":"signer"`},
		{"sponsor", true, `"kind":"sponsor"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, buf := newBufferedNotifier()
			sig := signature.New(3, signature.Attributes{Name: "Jo", Email: "jo@example.com"})
			sig.ID = 11
			if tt.sponsor {
				id := int64(5)
				sig.SponsorID = &id
			}

			if err := n.SignatureCreated(context.Background(), sig); err != nil {
				t.Fatalf("SignatureCreated() error = %v", err)
			}

			out := buf.String()
			if !strings.Contains(out, tt.wantKind) {
				t.Errorf("output = %q, want %s", out, tt.wantKind)
			}
			if !strings.Contains(out, `"signature_id":11`) {
				t.Errorf("output = %q, want signature_id", out)
			}
			if strings.Contains(out, sig.Token) {
				t.Errorf("output contains the confirmation token")
			}
		})
	}
}

func TestLogNotifier_CanceledContext(t *testing.T) {
	t.Parallel()

	n, buf := newBufferedNotifier()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sig := signature.New(1, signature.Attributes{Email: "jo@example.com"})
	if err := n.SignatureCreated(ctx, sig); err == nil {
		t.Error("SignatureCreated() error = nil, want context error")
	}
	if buf.Len() != 0 {
		t.Errorf("logged %q after cancellation", buf.String())
	}
}

func TestNewLogNotifier_NilLogger(t *testing.T) {
	t.Parallel()

	n := notifier.NewLogNotifier(nil)
	if err := n.SignatureCreated(context.Background(), signature.New(1, signature.Attributes{})); err != nil {
		t.Errorf("SignatureCreated() error = %v", err)
	}
}

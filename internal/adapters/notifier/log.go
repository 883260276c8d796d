// Package notifier provides the outbound Notifier adapter. Email delivery is
// handled outside this service; LogNotifier records each notification as a
// structured log line for the mailer to pick up.
package notifier

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// tokenTail is how many trailing token characters survive redaction.
const tokenTail = 4

// LogNotifier writes notifications to a logger. Tokens are masked before
// they reach the handler.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier. A nil logger discards output.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogNotifier{logger: logger.With(slog.String("component", "notifier"))}
}

// PetitionCreated asks the creator to confirm their email and invites each
// sponsor.
func (n *LogNotifier) PetitionCreated(ctx context.Context, p *petition.Petition) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if sig := p.CreatorSignature; sig != nil {
		n.logger.InfoContext(ctx, "email confirmation requested",
			slog.String("kind", "creator"),
			slog.Int64("petition_id", p.ID),
			slog.Int64("signature_id", sig.ID),
			slog.String("token_hint", RedactToken(sig.Token)),
		)
	}

	for _, sp := range p.Sponsors {
		n.logger.InfoContext(ctx, "sponsor invitation requested",
			slog.Int64("petition_id", p.ID),
			slog.Int64("sponsor_id", sp.ID),
			slog.String("token_hint", RedactToken(sp.Token)),
		)
	}
	return nil
}

// SignatureCreated asks a signatory to confirm their email.
func (n *LogNotifier) SignatureCreated(ctx context.Context, sig *signature.Signature) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	kind := "signer"
	if sig.SponsorID != nil {
		kind = "sponsor"
	}
	n.logger.InfoContext(ctx, "email confirmation requested",
		slog.String("kind", kind),
		slog.Int64("petition_id", sig.PetitionID),
		slog.Int64("signature_id", sig.ID),
		slog.Bool("notify_by_email", sig.NotifyByEmail),
		slog.String("token_hint", RedactToken(sig.Token)),
	)
	return nil
}

// RedactToken masks all but the last few characters of token. Short tokens
// are masked entirely.
func RedactToken(token string) string {
	if len(token) <= tokenTail*2 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-tokenTail) + token[len(token)-tokenTail:]
}

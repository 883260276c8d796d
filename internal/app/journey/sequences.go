// Package journey wires submitted petition and signature data to the staged
// engine. Each journey manager serves a single request.
package journey

import (
	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/staged"
)

// Stage names.
const (
	StagePetition       = "petition"
	StageCreator        = "creator"
	StageSponsors       = "sponsors"
	StageReplayPetition = "replay-petition"
	StageReplayEmail    = "replay-email"
	StageSigner         = "signer"
	StageDone           = "done"
)

// creation is the entity walked by the petition creation journey.
type creation struct {
	petition    *petition.Petition
	maxSponsors int
}

func (c *creation) Errors() *domain.FieldErrors {
	return c.petition.Errors()
}

func petitionDetails(c *creation) staged.Object {
	return staged.Validate(c.petition, petition.DetailsRules...)
}

// petitionReview is the replay of the petition with its sponsor list. It is
// the only forward stage checking sponsors.
func petitionReview(c *creation) staged.Object {
	return staged.All(petitionDetails(c), sponsorEmails(c))
}

func creatorDetails(c *creation) staged.Object {
	return staged.Nested(c.petition, petition.CreatorPrefix, c.petition.CreatorSignature, signature.DetailsRules...)
}

func sponsorEmails(c *creation) staged.Object {
	return staged.Validate(c.petition, petition.SponsorRules(c.maxSponsors)...)
}

func creatorEmail(c *creation) staged.Object {
	return staged.Nested(c.petition, petition.CreatorPrefix, c.petition.CreatorSignature, signature.EmailRules...)
}

// creationSequence moves petition -> replay-petition -> creator ->
// replay-email -> done. Sponsors sits off the forward chain and is reached
// only by name, so replay-petition checks the sponsor list too.
var creationSequence = staged.MustSequence(StageDone,
	staged.Step[*creation]{Name: StagePetition, Back: StagePetition, Next: StageReplayPetition, Object: petitionDetails},
	staged.Step[*creation]{Name: StageCreator, Back: StageReplayPetition, Next: StageReplayEmail, Object: creatorDetails},
	staged.Step[*creation]{Name: StageSponsors, Back: StageCreator, Next: StageReplayEmail, Object: sponsorEmails},
	staged.Step[*creation]{Name: StageReplayPetition, Back: StagePetition, Next: StageCreator, Object: petitionReview},
	staged.Step[*creation]{Name: StageReplayEmail, Back: StageCreator, Next: StageDone, Object: creatorEmail},
	staged.Step[*creation]{Name: StageDone, Back: StageDone, Next: StageDone},
)

func signerDetails(s *signature.Signature) staged.Object {
	return staged.Validate(s, signature.DetailsRules...)
}

func signerEmail(s *signature.Signature) staged.Object {
	return staged.Validate(s, signature.EmailRules...)
}

// signingSequence serves both public signers and sponsors.
var signingSequence = staged.MustSequence(StageDone,
	staged.Step[*signature.Signature]{Name: StageSigner, Back: StageSigner, Next: StageReplayEmail, Object: signerDetails},
	staged.Step[*signature.Signature]{Name: StageReplayEmail, Back: StageSigner, Next: StageDone, Object: signerEmail},
	staged.Step[*signature.Signature]{Name: StageDone, Back: StageDone, Next: StageDone},
)

// CreationStages returns the petition creation stage names in order.
func CreationStages() []string {
	return creationSequence.Names()
}

// SigningStages returns the signing stage names in order.
func SigningStages() []string {
	return signingSequence.Names()
}

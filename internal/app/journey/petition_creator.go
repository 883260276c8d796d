package journey

import (
	"context"
	"strings"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
	"github.com/jsamuelsen11/petitions-service/internal/staged"
)

// PetitionCreator walks a new petition through the creation journey.
type PetitionCreator struct {
	entity  *creation
	manager *staged.Manager[*creation]
	saver   PetitionSaver
}

// NewPetitionCreator builds a petition from attrs, trims its text fields and
// the creator's email, and records the request address on the creator
// signature.
func NewPetitionCreator(in ports.StepInput, attrs petition.Attributes, maxSponsors int, saver PetitionSaver) *PetitionCreator {
	p := petition.New(attrs)
	p.Action = strings.TrimSpace(p.Action)
	p.Background = strings.TrimSpace(p.Background)
	p.CreatorSignature.Email = strings.TrimSpace(p.CreatorSignature.Email)
	p.CreatorSignature.IPAddress = in.RemoteIP

	entity := &creation{petition: p, maxSponsors: maxSponsors}
	return &PetitionCreator{
		entity:  entity,
		manager: staged.NewManager(creationSequence, entity, in.Stage, staged.Move(in.Move)),
		saver:   saver,
	}
}

// Stage returns the name of the stage the request lands on.
func (c *PetitionCreator) Stage() string {
	return c.manager.ResultStage().Name()
}

// StartingStage returns the name of the stage the request came from.
func (c *PetitionCreator) StartingStage() string {
	return c.manager.StartingStage().Name()
}

// StageObject returns the validation view of the current stage.
func (c *PetitionCreator) StageObject() staged.Object {
	return c.manager.ResultStage().Object()
}

// Complete reports whether the journey reached its terminal stage.
func (c *PetitionCreator) Complete() bool {
	return c.manager.ResultStage().Complete()
}

// Petition returns the petition under construction.
func (c *PetitionCreator) Petition() *petition.Petition {
	return c.entity.petition
}

// Errors returns the errors the current stage found on this request. Errors
// on fields other stages own stay on the petition.
func (c *PetitionCreator) Errors() *domain.FieldErrors {
	return c.StageObject().Errors()
}

// CreatePetition saves the petition once the journey is complete. It
// returns true only when the petition was stored. A false result with a nil
// error means the user has more to fix; Stage says where.
func (c *PetitionCreator) CreatePetition(ctx context.Context) (bool, error) {
	return c.manager.Create(ctx, c.save)
}

func (c *PetitionCreator) save(ctx context.Context) (bool, error) {
	p := c.entity.petition
	if !p.Validate(c.entity.maxSponsors) {
		return false, nil
	}
	return settle(c.saver.CreatePetition(ctx, p), p.Refuse)
}

package lab

import (
	"github.com/google/uuid"
)

type Experiment struct {
	id             uuid.UUID
	name           string
	category       Category
	labID          uuid.UUID
	completedCount int
}

func ReconstructExperiment(id uuid.UUID, name string, category Category, labID uuid.UUID, completedCount int) *Experiment {
	return &Experiment{
		id:             id,
		name:           name,
		category:       category,
		labID:          labID,
		completedCount: completedCount,
	}
}

func (e *Experiment) BelongsTo(labID uuid.UUID) bool {
	return e.labID == labID
}

func (e *Experiment) AddCompleted(delta int) {
	e.completedCount += delta
}

func (e *Experiment) ID() uuid.UUID       { return e.id }
func (e *Experiment) Name() string        { return e.name }
func (e *Experiment) Category() Category  { return e.category }
func (e *Experiment) LabID() uuid.UUID    { return e.labID }
func (e *Experiment) CompletedCount() int { return e.completedCount }

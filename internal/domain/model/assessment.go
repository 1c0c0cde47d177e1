package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/event"
	"github.com/prototypevg/VeriGuard-AI-app/pkg/events"
)

// Kind identifies which scorer produced an assessment.
type Kind string

const (
	KindTransaction Kind = "transaction"
	KindProduct     Kind = "product"
	KindSeller      Kind = "seller"
	KindSecurity    Kind = "security"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindTransaction, KindProduct, KindSeller, KindSecurity:
		return k, nil
	default:
		return "", fmt.Errorf("unknown assessment kind %q", s)
	}
}

// Assessment is the aggregate root wrapping one scoring call. It carries the
// identity and timestamp that the pure scorers deliberately leave out.
type Assessment struct {
	events.EventCollector

	assessedAt     time.Time
	kind           Kind
	classification string
	explanations   []string
	score          int
	completed      bool
	id             uuid.UUID
}

// NewAssessment creates an empty assessment. Call Complete() once the scorer
// has produced its result.
func NewAssessment(id uuid.UUID, kind Kind) (*Assessment, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("assessment ID is required")
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	return &Assessment{
		id:           id,
		kind:         kind,
		explanations: make([]string, 0),
	}, nil
}

// Complete records the scorer outcome and raises the corresponding events.
// highRisk marks outcomes in the most severe bucket of their kind.
func (a *Assessment) Complete(score int, classification string, explanations []string, highRisk bool, at time.Time) error {
	if a.completed {
		return fmt.Errorf("assessment %s already completed", a.id)
	}
	if score < 0 || score > 100 {
		return fmt.Errorf("score must be between 0 and 100, got %d", score)
	}
	if classification == "" {
		return fmt.Errorf("classification is required")
	}

	a.score = score
	a.classification = classification
	a.explanations = append(make([]string, 0, len(explanations)), explanations...)
	a.assessedAt = at.UTC()
	a.completed = true

	a.Record(event.NewAssessmentCompleted(
		a.id, string(a.kind), a.classification, a.score, a.explanations, a.assessedAt,
	))
	if highRisk {
		a.Record(event.NewHighRiskDetected(
			a.id, string(a.kind), a.classification, a.score, a.explanations, a.assessedAt,
		))
	}

	return nil
}

// --- Accessors ---

func (a *Assessment) ID() uuid.UUID          { return a.id }
func (a *Assessment) Kind() Kind             { return a.kind }
func (a *Assessment) Score() int             { return a.score }
func (a *Assessment) Classification() string { return a.classification }
func (a *Assessment) Explanations() []string { return a.explanations }
func (a *Assessment) AssessedAt() time.Time  { return a.assessedAt }
func (a *Assessment) Completed() bool        { return a.completed }

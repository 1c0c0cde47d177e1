package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/prototypevg/VeriGuard-AI-app/pkg/events"
)

const (
	// EventTypeAssessmentCompleted is emitted when any assessment finishes.
	EventTypeAssessmentCompleted = "risk.assessment.completed"

	// EventTypeHighRiskDetected is emitted when an assessment lands in the
	// most severe bucket of its kind (CRITICAL, REJECTED or BLOCKED).
	EventTypeHighRiskDetected = "risk.high_risk.detected"

	// AggregateTypeAssessment names the aggregate that raises these events.
	AggregateTypeAssessment = "assessment"
)

// AssessmentCompletedPayload is the body of an AssessmentCompleted event.
type AssessmentCompletedPayload struct {
	AssessedAt     time.Time `json:"assessed_at"`
	Kind           string    `json:"kind"`
	Classification string    `json:"classification"`
	Explanations   []string  `json:"explanations"`
	AssessmentID   uuid.UUID `json:"assessment_id"`
	Score          int       `json:"score"`
}

// AssessmentCompleted is published once per completed assessment.
type AssessmentCompleted struct {
	events.BaseEvent
	Data AssessmentCompletedPayload
}

// NewAssessmentCompleted builds the event for a completed assessment.
func NewAssessmentCompleted(
	assessmentID uuid.UUID,
	kind, classification string,
	score int,
	explanations []string,
	assessedAt time.Time,
) AssessmentCompleted {
	data := AssessmentCompletedPayload{
		AssessmentID:   assessmentID,
		Kind:           kind,
		Classification: classification,
		Score:          score,
		Explanations:   explanations,
		AssessedAt:     assessedAt.UTC(),
	}
	return AssessmentCompleted{
		BaseEvent: events.NewBaseEvent(EventTypeAssessmentCompleted, assessmentID, AggregateTypeAssessment, assessedAt, data),
		Data:      data,
	}
}

// HighRiskDetectedPayload is the body of a HighRiskDetected event.
type HighRiskDetectedPayload struct {
	DetectedAt     time.Time `json:"detected_at"`
	Kind           string    `json:"kind"`
	Classification string    `json:"classification"`
	Explanations   []string  `json:"explanations"`
	AssessmentID   uuid.UUID `json:"assessment_id"`
	Score          int       `json:"score"`
}

// HighRiskDetected is published alongside AssessmentCompleted when the
// outcome calls for blocking or rejection.
type HighRiskDetected struct {
	events.BaseEvent
	Data HighRiskDetectedPayload
}

// NewHighRiskDetected builds the alert event for a severe assessment.
func NewHighRiskDetected(
	assessmentID uuid.UUID,
	kind, classification string,
	score int,
	explanations []string,
	detectedAt time.Time,
) HighRiskDetected {
	data := HighRiskDetectedPayload{
		AssessmentID:   assessmentID,
		Kind:           kind,
		Classification: classification,
		Score:          score,
		Explanations:   explanations,
		DetectedAt:     detectedAt.UTC(),
	}
	return HighRiskDetected{
		BaseEvent: events.NewBaseEvent(EventTypeHighRiskDetected, assessmentID, AggregateTypeAssessment, detectedAt, data),
		Data:      data,
	}
}

// Package eligibility decides whether a participant has standing to join
// chat rooms: they must have donated at least one resource or requested one.
package eligibility

// Participation is the ledger-side probe the evaluator queries.
type Participation interface {
	ExistsForParticipant(participantID string) (bool, error)
}

// Evaluator is a side-effect-free predicate over current ledger state.
// Callers must re-evaluate on every join and every send; the result is never
// cached, because standing can be revoked mid-session (e.g. the only donated
// resource gets removed).
type Evaluator struct {
	Ledger Participation
}

// NewEvaluator creates a new evaluator backed by the given ledger.
func NewEvaluator(l Participation) *Evaluator {
	return &Evaluator{Ledger: l}
}

// IsEligible reports whether the participant may join or speak in a room.
func (e *Evaluator) IsEligible(participantID string) (bool, error) {
	return e.Ledger.ExistsForParticipant(participantID)
}

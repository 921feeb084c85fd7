package handhistory

import "fmt"

// StructuralError reports that a required header, table, pot, board or
// hero-card pattern is absent from the hand text. The hand it belongs to
// cannot be produced; the engine never substitutes defaults for the
// missing field.
type StructuralError struct {
	HandID string // empty when the failure precedes header parsing
	Field  string // which required pattern was missing
}

func (e *StructuralError) Error() string {
	if e.HandID == "" {
		return fmt.Sprintf("hand history: required %s not found", e.Field)
	}
	return fmt.Sprintf("hand %s: required %s not found", e.HandID, e.Field)
}

// GrammarError reports an action line that matched none of the ordered
// grammar rules. The containing hand is not produced.
type GrammarError struct {
	HandID string
	Line   string
}

func (e *GrammarError) Error() string {
	if e.HandID == "" {
		return fmt.Sprintf("hand history: unrecognized action line %q", e.Line)
	}
	return fmt.Sprintf("hand %s: unrecognized action line %q", e.HandID, e.Line)
}

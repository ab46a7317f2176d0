// Package history defines print history domain types and interfaces.
package history

import "time"

// Outcome records how a print attempt ended.
type Outcome string

const (
	// OutcomePrinted means the job was handed to the print subsystem.
	OutcomePrinted Outcome = "printed"
	// OutcomeFailed means the print attempt failed; Error holds the cause.
	OutcomeFailed Outcome = "failed"
	// OutcomeRenderOnly means the label was rendered without a print attempt.
	OutcomeRenderOnly Outcome = "render_only"
)

// Entry represents one recorded print attempt.
type Entry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Printer   string    `json:"printer,omitempty"`
	Outcome   Outcome   `json:"outcome"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Failed returns true if the print attempt did not reach the printer.
func (e *Entry) Failed() bool {
	return e.Outcome == OutcomeFailed
}

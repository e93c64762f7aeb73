package report

import "fmt"

// State represents a phase of the submission lifecycle
type State string

const (
	StateIdle         State = "IDLE"
	StateValidating   State = "VALIDATING"
	StateCheckingMime State = "CHECKING_MIME"
	StateUploading    State = "UPLOADING"
	StateSubmitting   State = "SUBMITTING"
)

var validStates = map[State]bool{
	StateIdle:         true,
	StateValidating:   true,
	StateCheckingMime: true,
	StateUploading:    true,
	StateSubmitting:   true,
}

// IsValid returns true if the state is a known submission state
func (s State) IsValid() bool {
	return validStates[s]
}

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// Trigger represents an event that moves the submission lifecycle forward
type Trigger string

const (
	TriggerSubmit           Trigger = "SUBMIT"
	TriggerValidationPassed Trigger = "VALIDATION_PASSED"
	TriggerValidationFailed Trigger = "VALIDATION_FAILED"
	TriggerMimePassed       Trigger = "MIME_PASSED"
	TriggerMimeFailed       Trigger = "MIME_FAILED"
	TriggerUploadsCompleted Trigger = "UPLOADS_COMPLETED"
	TriggerUploadFailed     Trigger = "UPLOAD_FAILED"
	TriggerReportAccepted   Trigger = "REPORT_ACCEPTED"
	TriggerReportRejected   Trigger = "REPORT_REJECTED"
)

// String returns the string representation of the trigger
func (t Trigger) String() string {
	return string(t)
}

// Machine tracks the current submission state and validates transitions.
// Every failure edge returns to Idle so the user can correct and resubmit;
// nothing is retried automatically.
type Machine struct {
	current     State
	transitions map[State]map[Trigger]State
}

// NewSubmissionMachine builds the submission lifecycle machine starting at Idle
func NewSubmissionMachine() *Machine {
	return &Machine{
		current: StateIdle,
		transitions: map[State]map[Trigger]State{
			StateIdle: {
				TriggerSubmit: StateValidating,
			},
			StateValidating: {
				TriggerValidationPassed: StateCheckingMime,
				TriggerValidationFailed: StateIdle,
			},
			StateCheckingMime: {
				TriggerMimePassed: StateUploading,
				TriggerMimeFailed: StateIdle,
			},
			StateUploading: {
				TriggerUploadsCompleted: StateSubmitting,
				TriggerUploadFailed:     StateIdle,
			},
			StateSubmitting: {
				TriggerReportAccepted: StateIdle,
				TriggerReportRejected: StateIdle,
			},
		},
	}
}

// State returns the current state
func (m *Machine) State() State {
	return m.current
}

// CanFire returns true if the trigger is permitted in the current state
func (m *Machine) CanFire(trigger Trigger) bool {
	_, ok := m.transitions[m.current][trigger]
	return ok
}

// Fire executes the trigger, transitioning to the new state if allowed
func (m *Machine) Fire(trigger Trigger) error {
	next, ok := m.transitions[m.current][trigger]
	if !ok {
		return fmt.Errorf("%w: cannot fire %s from %s", ErrInvalidTransition, trigger, m.current)
	}
	m.current = next
	return nil
}

// PermittedTriggers returns all triggers that can be fired in the current state
func (m *Machine) PermittedTriggers() []Trigger {
	perms := m.transitions[m.current]
	triggers := make([]Trigger, 0, len(perms))
	for trigger := range perms {
		triggers = append(triggers, trigger)
	}
	return triggers
}

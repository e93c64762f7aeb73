package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected bool
	}{
		{"idle", StateIdle, true},
		{"validating", StateValidating, true},
		{"checking mime", StateCheckingMime, true},
		{"uploading", StateUploading, true},
		{"submitting", StateSubmitting, true},
		{"unknown state", State("DONE"), false},
		{"empty state", State(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.IsValid())
		})
	}
}

func TestMachine_HappyPath(t *testing.T) {
	m := NewSubmissionMachine()
	assert.Equal(t, StateIdle, m.State())

	steps := []struct {
		trigger Trigger
		want    State
	}{
		{TriggerSubmit, StateValidating},
		{TriggerValidationPassed, StateCheckingMime},
		{TriggerMimePassed, StateUploading},
		{TriggerUploadsCompleted, StateSubmitting},
		{TriggerReportAccepted, StateIdle},
	}

	for _, step := range steps {
		assert.NoError(t, m.Fire(step.trigger))
		assert.Equal(t, step.want, m.State())
	}
}

func TestMachine_EveryFailureEdgeReturnsToIdle(t *testing.T) {
	tests := []struct {
		name    string
		advance []Trigger
		failure Trigger
	}{
		{"validation failure", []Trigger{TriggerSubmit}, TriggerValidationFailed},
		{"mime failure", []Trigger{TriggerSubmit, TriggerValidationPassed}, TriggerMimeFailed},
		{"upload failure", []Trigger{TriggerSubmit, TriggerValidationPassed, TriggerMimePassed}, TriggerUploadFailed},
		{"report rejected", []Trigger{TriggerSubmit, TriggerValidationPassed, TriggerMimePassed, TriggerUploadsCompleted}, TriggerReportRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSubmissionMachine()
			for _, trigger := range tt.advance {
				assert.NoError(t, m.Fire(trigger))
			}
			assert.NoError(t, m.Fire(tt.failure))
			assert.Equal(t, StateIdle, m.State())
		})
	}
}

func TestMachine_RejectsOutOfOrderTriggers(t *testing.T) {
	m := NewSubmissionMachine()

	err := m.Fire(TriggerUploadsCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StateIdle, m.State())

	assert.False(t, m.CanFire(TriggerReportAccepted))
	assert.True(t, m.CanFire(TriggerSubmit))
}

func TestMachine_PermittedTriggers(t *testing.T) {
	m := NewSubmissionMachine()
	assert.NoError(t, m.Fire(TriggerSubmit))

	triggers := m.PermittedTriggers()
	assert.ElementsMatch(t, []Trigger{TriggerValidationPassed, TriggerValidationFailed}, triggers)
}

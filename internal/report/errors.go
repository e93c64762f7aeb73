package report

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmissionInFlight is returned when Submit is called while a
	// previous submission on the same Submitter has not resolved yet
	ErrSubmissionInFlight = errors.New("a submission is already in progress")

	// ErrInvalidTransition is returned when a state transition is not allowed
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrNotPermitted is returned when the session's role may not file reports
	ErrNotPermitted = errors.New("role is not permitted to file service reports")
)

// ValidationError reports one or more schema rule violations. It never
// reaches the network: submission aborts before any call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// AssetFormatError reports an image whose content type is outside the
// asset host's allow-list. No uploads are performed when it occurs.
type AssetFormatError struct {
	Field       string
	ContentType string
}

func (e *AssetFormatError) Error() string {
	return fmt.Sprintf("invalid image format %s for %s: use JPG/PNG/WEBP/HEIC", e.ContentType, e.Field)
}

// UploadError reports a failed asset upload. The upstream message is
// surfaced when the host supplied one.
type UploadError struct {
	Field string
	Err   error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "asset upload failed"
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// SubmissionError reports a report-endpoint failure: either a non-success
// status in the response body or a transport error.
type SubmissionError struct {
	Status  string
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "failed to create report"
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

package report

import (
	"context"
	"sync"

	"github.com/vexr-systems/fieldserve/internal/asset"
	"github.com/vexr-systems/fieldserve/internal/session"
	"go.uber.org/zap"
)

// AssetUploader transfers one file under a named upload profile and
// returns the durable URL the asset host assigned
type AssetUploader interface {
	Upload(ctx context.Context, f *asset.File, preset string) (string, error)
}

// CreateResult is the report endpoint's verdict on a creation call
type CreateResult struct {
	Status  string
	Message string
}

// ReportCreator submits the assembled payload to the report endpoint
type ReportCreator interface {
	CreateReport(ctx context.Context, p *Payload) (*CreateResult, error)
}

// UploadProfiles names the asset-host presets for the two report images
type UploadProfiles struct {
	Report   string
	Delivery string
}

// Submitter runs the service-report submission workflow: validate the
// draft, gate the image formats, upload both images concurrently,
// assemble the payload with the session identity and create the report.
// One submission at a time; every failure path returns to Idle with the
// draft untouched so the user can correct and resubmit.
type Submitter struct {
	uploader AssetUploader
	creator  ReportCreator
	sess     *session.Session
	profiles UploadProfiles
	logger   *zap.Logger

	submitMu sync.Mutex // serializes submissions; TryLock rejects overlap

	stateMu    sync.Mutex
	machine    *Machine
	lastErrors map[string]string
}

// NewSubmitter creates a new submission workflow bound to a session
func NewSubmitter(uploader AssetUploader, creator ReportCreator, sess *session.Session, profiles UploadProfiles, logger *zap.Logger) *Submitter {
	return &Submitter{
		uploader: uploader,
		creator:  creator,
		sess:     sess,
		profiles: profiles,
		logger:   logger,
		machine:  NewSubmissionMachine(),
	}
}

// State returns the current workflow state
func (s *Submitter) State() State {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.machine.State()
}

// Errors returns a copy of the per-field messages from the last
// validation failure. Empty after a successful validation pass.
func (s *Submitter) Errors() map[string]string {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	out := make(map[string]string, len(s.lastErrors))
	for k, v := range s.lastErrors {
		out[k] = v
	}
	return out
}

// Submit runs one submission attempt for the draft. On success the draft
// is reset to its empty shape; on any failure the draft is left intact
// and the returned error describes the single user-visible outcome.
func (s *Submitter) Submit(ctx context.Context, draft *Draft) error {
	if !s.submitMu.TryLock() {
		return ErrSubmissionInFlight
	}
	defer s.submitMu.Unlock()

	if err := s.sess.Validate(); err != nil {
		return err
	}
	if !s.sess.CanSubmitReports() {
		return ErrNotPermitted
	}

	s.fire(TriggerSubmit)

	result := Validate(draft)
	if !result.Valid {
		s.setErrors(result.Errors)
		s.fire(TriggerValidationFailed)
		s.logger.Info("Draft failed validation",
			zap.Int("violations", len(result.Errors)))
		return &ValidationError{Fields: result.Errors}
	}
	s.setErrors(nil)
	s.fire(TriggerValidationPassed)

	// Format gate, deliberately after schema validation: the schema only
	// checks presence, so a draft can validate and still stop here.
	images := []struct {
		field  string
		file   *asset.File
		preset string
	}{
		{"serviceReportPicture", draft.ServiceReportPicture, s.profiles.Report},
		{"deliveryNotePicture", draft.DeliveryNotePicture, s.profiles.Delivery},
	}
	for _, img := range images {
		if !asset.AllowedImageType(img.file.ContentType) {
			s.fire(TriggerMimeFailed)
			s.logger.Info("Image format rejected",
				zap.String("field", img.field),
				zap.String("content_type", img.file.ContentType))
			return &AssetFormatError{Field: img.field, ContentType: img.file.ContentType}
		}
	}
	s.fire(TriggerMimePassed)

	// Both uploads run concurrently. The join is fail-fast: the first
	// error returns without waiting for the peer, whose result drains
	// into the buffered channel.
	type uploadOutcome struct {
		field string
		url   string
		err   error
	}
	outcomes := make(chan uploadOutcome, len(images))
	for _, img := range images {
		go func(field, preset string, f *asset.File) {
			url, err := s.uploader.Upload(ctx, f, preset)
			outcomes <- uploadOutcome{field: field, url: url, err: err}
		}(img.field, img.preset, img.file)
	}

	urls := make(map[string]string, len(images))
	for range images {
		outcome := <-outcomes
		if outcome.err != nil {
			s.fire(TriggerUploadFailed)
			s.logger.Warn("Asset upload failed",
				zap.String("field", outcome.field),
				zap.Error(outcome.err))
			return &UploadError{Field: outcome.field, Err: outcome.err}
		}
		urls[outcome.field] = outcome.url
	}
	s.fire(TriggerUploadsCompleted)

	payload := BuildPayload(draft, s.sess, urls["serviceReportPicture"], urls["deliveryNotePicture"])

	created, err := s.creator.CreateReport(ctx, payload)
	if err != nil {
		s.fire(TriggerReportRejected)
		return &SubmissionError{Err: err}
	}
	if created.Status != "success" {
		s.fire(TriggerReportRejected)
		s.logger.Info("Report endpoint rejected submission",
			zap.String("status", created.Status),
			zap.String("message", created.Message))
		return &SubmissionError{Status: created.Status, Message: created.Message}
	}

	draft.Reset()
	s.fire(TriggerReportAccepted)
	s.logger.Info("Service report created",
		zap.String("region", s.sess.RegionID),
		zap.String("engineer", s.sess.UserID))
	return nil
}

func (s *Submitter) fire(trigger Trigger) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if err := s.machine.Fire(trigger); err != nil {
		// Transitions are fixed at construction; this indicates a bug.
		s.logger.Error("Unexpected workflow transition", zap.Error(err))
	}
}

func (s *Submitter) setErrors(errs map[string]string) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.lastErrors = errs
}

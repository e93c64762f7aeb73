package asset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HTTPClient interface for testability
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Uploader transfers binary assets to the external asset host using
// unsigned preset uploads. Each upload names a preset (profile) that
// tells the host how to process and store the file; the host answers
// with a durable URL.
type Uploader struct {
	uploadURL  string
	cloudName  string
	httpClient HTTPClient
	logger     *zap.Logger
}

// NewUploader creates a new asset uploader
func NewUploader(uploadURL, cloudName string, timeout time.Duration, logger *zap.Logger) *Uploader {
	return &Uploader{
		uploadURL:  uploadURL,
		cloudName:  cloudName,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetHTTPClient replaces the underlying HTTP client (used by tests)
func (u *Uploader) SetHTTPClient(hc HTTPClient) {
	u.httpClient = hc
}

// uploadResponse is the asset host's answer to an upload request
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file under the given preset and returns the durable
// URL the host assigned. Failures carry the host's message when it
// provided one.
func (u *Uploader) Upload(ctx context.Context, f *File, preset string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", f.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(f.Data); err != nil {
		return "", fmt.Errorf("failed to write file data: %w", err)
	}
	if err := writer.WriteField("upload_preset", preset); err != nil {
		return "", fmt.Errorf("failed to write upload_preset field: %w", err)
	}
	if err := writer.WriteField("cloud_name", u.cloudName); err != nil {
		return "", fmt.Errorf("failed to write cloud_name field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		u.logger.Warn("Upload request failed",
			zap.String("preset", preset),
			zap.String("file", f.Name),
			zap.Error(err))
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	var result uploadResponse
	// The host answers JSON for both success and failure; a decode error
	// on a non-200 still yields the status-based message below.
	_ = json.Unmarshal(data, &result)

	if resp.StatusCode != http.StatusOK || result.SecureURL == "" {
		msg := "asset upload failed"
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		u.logger.Warn("Asset host rejected upload",
			zap.Int("status", resp.StatusCode),
			zap.String("preset", preset),
			zap.String("message", msg))
		return "", fmt.Errorf("%s", msg)
	}

	u.logger.Debug("Uploaded asset",
		zap.String("preset", preset),
		zap.String("file", f.Name),
		zap.Int("size", len(f.Data)))

	return result.SecureURL, nil
}

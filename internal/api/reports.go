package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vexr-systems/fieldserve/internal/report"
	"go.uber.org/zap"
)

// ServiceReport is a stored report as returned by the backend. Only the
// fields the dashboard's Documents grid shows are modelled here; the
// submission payload lives in the report package.
type ServiceReport struct {
	ID                 string `json:"_id"`
	SerialReportNumber string `json:"SerialReportNumber"`
	Date               string `json:"Date"`
	Customer           string `json:"Customer"`
	Region             string `json:"region"`
	EngineerName       string `json:"engineerName"`
	MachineType        string `json:"MachineType"`
	ServiceType        string `json:"ServiceType"`
	Model              string `json:"Model"`
	SerialNumber       string `json:"SerialNumber"`
	JobCompleted       string `json:"JobCompleted"`
	Description        string `json:"description"`
	CreatedAt          string `json:"createdAt"`
}

// ReportsService talks to the /reports endpoints
type ReportsService struct {
	client *Client
	logger *zap.Logger
}

// NewReportsService creates a new reports service
func NewReportsService(client *Client, logger *zap.Logger) *ReportsService {
	return &ReportsService{client: client, logger: logger}
}

// CreateReport submits a new service report. Transport failures and
// non-2xx responses come back as errors; otherwise the backend's own
// status/message verdict is returned for the caller to interpret.
func (s *ReportsService) CreateReport(ctx context.Context, p *report.Payload) (*report.CreateResult, error) {
	var env envelope
	if err := s.client.do(ctx, http.MethodPost, "/reports", p, &env); err != nil {
		// Not wrapped: the server's message is what the user should see.
		return nil, err
	}
	return &report.CreateResult{Status: env.Status, Message: env.Message}, nil
}

type reportsResponse struct {
	Status string          `json:"status"`
	Data   []ServiceReport `json:"data"`
}

// List returns all reports visible to the session
func (s *ReportsService) List(ctx context.Context) ([]ServiceReport, error) {
	var resp reportsResponse
	if err := s.client.do(ctx, http.MethodGet, "/reports", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return resp.Data, nil
}

type reportResponse struct {
	Status string        `json:"status"`
	Data   ServiceReport `json:"data"`
}

// Get returns a single report by id
func (s *ReportsService) Get(ctx context.Context, id string) (*ServiceReport, error) {
	var resp reportResponse
	if err := s.client.do(ctx, http.MethodGet, "/reports/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vexr-systems/fieldserve/internal/report"
	"go.uber.org/zap"
)

// Spare is a spare-part record
type Spare struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// SparesService talks to the /spares endpoints
type SparesService struct {
	client *Client
	logger *zap.Logger
}

// NewSparesService creates a new spares service
func NewSparesService(client *Client, logger *zap.Logger) *SparesService {
	return &SparesService{client: client, logger: logger}
}

type sparesResponse struct {
	Status string  `json:"status"`
	Spares []Spare `json:"spares"`
}

type spareResponse struct {
	Status string `json:"status"`
	Spare  Spare  `json:"spare"`
}

// List returns all spare parts
func (s *SparesService) List(ctx context.Context) ([]Spare, error) {
	var resp sparesResponse
	if err := s.client.do(ctx, http.MethodGet, "/spares", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list spares: %w", err)
	}
	return resp.Spares, nil
}

// Get returns a single spare part by id
func (s *SparesService) Get(ctx context.Context, id string) (*Spare, error) {
	var resp spareResponse
	if err := s.client.do(ctx, http.MethodGet, "/spares/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Spare, nil
}

// Create adds a spare part
func (s *SparesService) Create(ctx context.Context, sp Spare) error {
	return s.client.do(ctx, http.MethodPost, "/spares", sp, nil)
}

// Update replaces a spare part record
func (s *SparesService) Update(ctx context.Context, id string, sp Spare) error {
	return s.client.do(ctx, http.MethodPut, "/spares/"+id, sp, nil)
}

// Delete removes a spare part
func (s *SparesService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/spares/"+id, nil, nil)
}

// SpareOptions returns spare parts as selection options labelled
// "Name (CODE)", matching the dashboard's multi-select.
func (s *SparesService) SpareOptions(ctx context.Context) ([]report.Option, error) {
	spares, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]report.Option, 0, len(spares))
	for _, sp := range spares {
		options = append(options, report.Option{
			ID:    sp.ID,
			Label: fmt.Sprintf("%s (%s)", sp.Name, sp.Code),
		})
	}

	s.logger.Debug("Loaded spare options", zap.Int("count", len(options)))
	return options, nil
}

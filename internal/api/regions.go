package api

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// RegionsService talks to the region endpoints. The backend mounts these
// under /customers, so the paths look odd from here but match the server.
type RegionsService struct {
	client *Client
	logger *zap.Logger
}

// NewRegionsService creates a new regions service
func NewRegionsService(client *Client, logger *zap.Logger) *RegionsService {
	return &RegionsService{client: client, logger: logger}
}

type regionsResponse struct {
	Status  string   `json:"status"`
	Regions []Region `json:"regions"`
}

// List returns all regions
func (s *RegionsService) List(ctx context.Context) ([]Region, error) {
	var resp regionsResponse
	if err := s.client.do(ctx, http.MethodGet, "/customers/region", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return resp.Regions, nil
}

// Create adds a region
func (s *RegionsService) Create(ctx context.Context, r Region) error {
	return s.client.do(ctx, http.MethodPost, "/customers/createRegion", r, nil)
}

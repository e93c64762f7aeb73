package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vexr-systems/fieldserve/internal/report"
	"go.uber.org/zap"
)

// Region is a sales/service region
type Region struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// UnmarshalJSON accepts both shapes the backend sends for a region ref:
// a populated object, or a bare id string when the ref was not populated.
func (r *Region) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	type plain Region
	return json.Unmarshal(data, (*plain)(r))
}

// Customer is a customer record as returned by the backend
type Customer struct {
	ID      string  `json:"_id"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Region  *Region `json:"region"`
}

// CustomersService talks to the /customers endpoints
type CustomersService struct {
	client *Client
	logger *zap.Logger
}

// NewCustomersService creates a new customers service
func NewCustomersService(client *Client, logger *zap.Logger) *CustomersService {
	return &CustomersService{client: client, logger: logger}
}

type customersResponse struct {
	Status    string     `json:"status"`
	Customers []Customer `json:"customers"`
}

// List returns all customers visible to the session
func (s *CustomersService) List(ctx context.Context) ([]Customer, error) {
	var resp customersResponse
	if err := s.client.do(ctx, http.MethodGet, "/customers", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return resp.Customers, nil
}

// Create adds a customer
func (s *CustomersService) Create(ctx context.Context, c Customer) error {
	return s.client.do(ctx, http.MethodPost, "/customers", c, nil)
}

// Update replaces a customer record
func (s *CustomersService) Update(ctx context.Context, id string, c Customer) error {
	return s.client.do(ctx, http.MethodPut, "/customers/"+id, c, nil)
}

// Delete removes a customer
func (s *CustomersService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/customers/"+id, nil, nil)
}

// CustomerOptions returns customers as selection options labelled the way
// the dashboard's customer picker labels them: "Name (REGION)".
func (s *CustomersService) CustomerOptions(ctx context.Context) ([]report.Option, error) {
	customers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]report.Option, 0, len(customers))
	for _, c := range customers {
		code := "N/A"
		if c.Region != nil && c.Region.Code != "" {
			code = c.Region.Code
		}
		options = append(options, report.Option{
			ID:    c.ID,
			Label: fmt.Sprintf("%s (%s)", c.Name, code),
		})
	}

	s.logger.Debug("Loaded customer options", zap.Int("count", len(options)))
	return options, nil
}

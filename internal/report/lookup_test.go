package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubCustomerSource struct {
	options []Option
	err     error
}

func (s *stubCustomerSource) CustomerOptions(ctx context.Context) ([]Option, error) {
	return s.options, s.err
}

type stubSpareSource struct {
	options []Option
	err     error
}

func (s *stubSpareSource) SpareOptions(ctx context.Context) ([]Option, error) {
	return s.options, s.err
}

func TestLoadCatalog(t *testing.T) {
	customers := &stubCustomerSource{options: []Option{
		{ID: "c1", Label: "Delta Foods (CAI)"},
		{ID: "c2", Label: "Nile Bottling (ALX)"},
	}}
	spares := &stubSpareSource{options: []Option{
		{ID: "s1", Label: "Print Head (PH-90)"},
	}}

	catalog, err := LoadCatalog(context.Background(), customers, spares, zap.NewNop())
	assert.NoError(t, err)
	assert.Len(t, catalog.Customers(), 2)
	assert.Len(t, catalog.Spares(), 1)

	assert.True(t, catalog.HasCustomer("c2"))
	assert.False(t, catalog.HasCustomer("c9"))
	assert.True(t, catalog.HasSpare("s1"))
	assert.False(t, catalog.HasSpare("s2"))
}

func TestLoadCatalog_PropagatesFetchErrors(t *testing.T) {
	customers := &stubCustomerSource{err: errors.New("backend down")}
	spares := &stubSpareSource{}

	_, err := LoadCatalog(context.Background(), customers, spares, zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "customers")
}

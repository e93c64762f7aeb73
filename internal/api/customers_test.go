package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRegion_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Region
	}{
		{"populated object", `{"_id":"r1","name":"Cairo","code":"CAI"}`, Region{ID: "r1", Name: "Cairo", Code: "CAI"}},
		{"bare id string", `"r1"`, Region{ID: "r1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Region
			assert.NoError(t, json.Unmarshal([]byte(tt.data), &r))
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestListCustomers(t *testing.T) {
	client := testClient(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/api/v1/customers", req.URL.Path)
		return jsonResponse(http.StatusOK, `{
			"status": "success",
			"customers": [
				{"_id": "c1", "name": "Delta Foods", "region": {"_id": "r1", "name": "Cairo", "code": "CAI"}},
				{"_id": "c2", "name": "Nile Bottling"}
			]
		}`), nil
	})
	customers := NewCustomersService(client, zap.NewNop())

	list, err := customers.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCustomerOptions_Labels(t *testing.T) {
	client := testClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{
			"customers": [
				{"_id": "c1", "name": "Delta Foods", "region": {"code": "CAI"}},
				{"_id": "c2", "name": "Nile Bottling"}
			]
		}`), nil
	})
	customers := NewCustomersService(client, zap.NewNop())

	options, err := customers.CustomerOptions(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, options, 2) {
		assert.Equal(t, "Delta Foods (CAI)", options[0].Label)
		// Customers without a region fall back to N/A.
		assert.Equal(t, "Nile Bottling (N/A)", options[1].Label)
	}
}

func TestSpareOptions_Labels(t *testing.T) {
	client := testClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{
			"spares": [{"_id": "s1", "name": "Print Head", "code": "PH-90"}]
		}`), nil
	})
	spares := NewSparesService(client, zap.NewNop())

	options, err := spares.SpareOptions(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, options, 1) {
		assert.Equal(t, "s1", options[0].ID)
		assert.Equal(t, "Print Head (PH-90)", options[0].Label)
	}
}

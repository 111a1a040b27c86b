// Package api - HTTP handler tests
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pricecalc/core/connectivity"
	"pricecalc/core/estimate"
	"pricecalc/core/fallback"
	"pricecalc/core/pricing"
)

func testServer() *Server {
	monitor := connectivity.NewMonitor()
	monitor.ForceOffline()
	resolver := pricing.NewResolver(
		estimate.NewDefaultRegistry(),
		fallback.NewDispatcher(monitor),
		nil,
		730,
	)
	return NewServer("test", resolver)
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

// TestEstimateEndpoint verifies POST /estimate returns a priced quote
func TestEstimateEndpoint(t *testing.T) {
	srv := testServer()

	rec := doJSON(t, srv, http.MethodPost, "/estimate", EstimateRequest{
		Service: "EC2",
		Label:   "web",
		Params: map[string]interface{}{
			"instance_type":  "t3.micro",
			"os_type":        "Windows",
			"hours_per_day":  24,
			"days_per_month": 30,
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Quote.TotalPrice.String() != "9.7344" {
		t.Errorf("TotalPrice = %s, want 9.7344", resp.Quote.TotalPrice)
	}
}

// TestEstimateUnknownService verifies unsupported kinds map to 400
func TestEstimateUnknownService(t *testing.T) {
	srv := testServer()

	rec := doJSON(t, srv, http.MethodPost, "/estimate", EstimateRequest{Service: "DynamoDB"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestBatchEstimateEndpoint verifies POST /estimate/batch aggregates
// totals
func TestBatchEstimateEndpoint(t *testing.T) {
	srv := testServer()

	rec := doJSON(t, srv, http.MethodPost, "/estimate/batch", BatchEstimateRequest{
		Resources: []EstimateRequest{
			{Service: "S3", Params: map[string]interface{}{"storage_gb": 100}},
			{Service: "Route 53", Params: map[string]interface{}{"hosted_zones": 1, "queries_millions": 0}},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp BatchEstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp.Resources) != 2 {
		t.Errorf("got %d resources, want 2", len(resp.Resources))
	}
	// 100 GB Standard + one hosted zone
	if resp.TotalCost != "2.8" {
		t.Errorf("TotalCost = %s, want 2.8", resp.TotalCost)
	}
}

// TestInstancePriceEndpoint verifies GET /ec2/price under forced
// offline returns the static price
func TestInstancePriceEndpoint(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/ec2/price?type=t3.micro&region=us-east-1&os=Linux", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp InstancePriceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Record.PricePerHour.String() != "0.0104" {
		t.Errorf("PricePerHour = %s, want 0.0104", resp.Record.PricePerHour)
	}
	if string(resp.Record.Source) != "static_data" {
		t.Errorf("Source = %s, want static_data", resp.Record.Source)
	}
}

// TestInstancePriceRequiresType verifies the type parameter is mandatory
func TestInstancePriceRequiresType(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/ec2/price", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestVolumePriceEndpoint verifies GET /ebs/price under forced offline
// returns the static per-GB price
func TestVolumePriceEndpoint(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/ebs/price?type=gp3&region=us-east-1", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp VolumePriceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Record.PricePerGBMonth.String() != "0.08" {
		t.Errorf("PricePerGBMonth = %s, want 0.08", resp.Record.PricePerGBMonth)
	}
	if string(resp.Record.Source) != "static_data" {
		t.Errorf("Source = %s, want static_data", resp.Record.Source)
	}
}

// TestVolumePriceUnknownType verifies unknown volume types map to 404
func TestVolumePriceUnknownType(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/ebs/price?type=gp9", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// TestConnectivityForce verifies the override endpoint flips and
// clears the monitor state
func TestConnectivityForce(t *testing.T) {
	srv := testServer()

	rec := doJSON(t, srv, http.MethodPost, "/connectivity/force", ForceConnectivityRequest{Mode: "online"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp ConnectivityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.State != "online" || !resp.Forced {
		t.Errorf("state = %s forced = %v, want forced online", resp.State, resp.Forced)
	}

	rec = doJSON(t, srv, http.MethodPost, "/connectivity/force", ForceConnectivityRequest{Mode: "bogus"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d for bogus mode, want 400", rec.Code)
	}
}

// TestServicesEndpoint verifies the service listing
func TestServicesEndpoint(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Services []string `json:"services"`
		Count    int      `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Count != 9 {
		t.Errorf("count = %d, want 9", resp.Count)
	}
}

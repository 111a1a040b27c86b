// Package input - Batch file parsing tests
package input

import (
	"testing"

	"pricecalc/core/estimate"
	"pricecalc/core/types"
	"pricecalc/internal/errors"
)

const sampleBatch = `
resource "EC2" "web-server" {
  instance_type  = "t3.small"
  region         = "us-east-1"
  os_type        = "Linux"
  quantity       = 2
  hours_per_day  = 24
  days_per_month = 30
}

resource "S3" "assets" {
  storage_gb    = 500
  storage_class = "Standard-IA"
}

resource "Route 53" "zone" {
  hosted_zones     = 1
  queries_millions = 5
}
`

// TestParseBatch verifies blocks, labels, and typed attribute values
func TestParseBatch(t *testing.T) {
	requests, err := NewLoader().Parse([]byte(sampleBatch), "test.hcl")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(requests) != 3 {
		t.Fatalf("parsed %d requests, want 3", len(requests))
	}

	web := requests[0]
	if web.Service != types.ServiceEC2 {
		t.Errorf("service = %s, want EC2", web.Service)
	}
	if web.Label != "web-server" {
		t.Errorf("label = %q, want web-server", web.Label)
	}
	if got := web.Params.Str("instance_type", ""); got != "t3.small" {
		t.Errorf("instance_type = %q, want t3.small", got)
	}
	if got := web.Params.Float("quantity", 0); got != 2 {
		t.Errorf("quantity = %v, want 2", got)
	}

	if requests[2].Service != types.ServiceRoute53 {
		t.Errorf("third service = %s, want Route 53", requests[2].Service)
	}
}

// TestParseUnknownService verifies unknown service labels are rejected
// with a typed input error
func TestParseUnknownService(t *testing.T) {
	src := `
resource "DynamoDB" "table" {
  capacity = 5
}
`
	_, err := NewLoader().Parse([]byte(src), "test.hcl")
	if err == nil {
		t.Fatal("expected error for unknown service")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("error = %v, want TypeInput", err)
	}
}

// TestParseMalformedHCL verifies syntax errors surface as input errors
func TestParseMalformedHCL(t *testing.T) {
	_, err := NewLoader().Parse([]byte(`resource "EC2" {`), "broken.hcl")
	if err == nil {
		t.Fatal("expected error for malformed HCL")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("error = %v, want TypeInput", err)
	}
}

// TestParsedBatchEstimates verifies a parsed batch runs through the
// default model registry
func TestParsedBatchEstimates(t *testing.T) {
	requests, err := NewLoader().Parse([]byte(sampleBatch), "test.hcl")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	registry := estimate.NewDefaultRegistry()
	for _, req := range requests {
		quote, err := registry.Estimate(req.Service, req.Params)
		if err != nil {
			t.Fatalf("estimate for %q failed: %v", req.Label, err)
		}
		if !quote.TotalPrice.IsPositive() {
			t.Errorf("%q: TotalPrice = %s, want positive", req.Label, quote.TotalPrice)
		}
	}
}

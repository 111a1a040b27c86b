// Package estimate - Cost model tests
package estimate

import (
	"testing"

	"github.com/shopspring/decimal"

	"pricecalc/core/types"
	"pricecalc/internal/errors"
)

func mustEstimate(t *testing.T, kind types.ServiceKind, params types.Params) types.PriceQuote {
	t.Helper()
	registry := NewDefaultRegistry()
	quote, err := registry.Estimate(kind, params)
	if err != nil {
		t.Fatalf("Estimate(%s) failed: %v", kind, err)
	}
	return quote
}

// TestEC2WindowsMonthlyCost verifies the Windows premium and the
// instance-hours arithmetic end to end
func TestEC2WindowsMonthlyCost(t *testing.T) {
	quote := mustEstimate(t, types.ServiceEC2, types.Params{
		"instance_type":  "t3.micro",
		"region":         "us-east-1",
		"os_type":        "Windows",
		"quantity":       1.0,
		"hours_per_day":  24.0,
		"days_per_month": 30.0,
	})

	wantUnit := decimal.RequireFromString("0.01352")
	if !quote.UnitPrice.Equal(wantUnit) {
		t.Errorf("UnitPrice = %s, want %s", quote.UnitPrice, wantUnit)
	}

	wantHours := decimal.NewFromInt(720)
	if !quote.MonthlyHours.Equal(wantHours) {
		t.Errorf("MonthlyHours = %s, want %s", quote.MonthlyHours, wantHours)
	}

	wantTotal := decimal.RequireFromString("9.7344")
	if !quote.TotalPrice.Equal(wantTotal) {
		t.Errorf("TotalPrice = %s, want %s", quote.TotalPrice, wantTotal)
	}
}

// TestEC2LinuxNoPremium verifies Linux prices are not multiplied
func TestEC2LinuxNoPremium(t *testing.T) {
	quote := mustEstimate(t, types.ServiceEC2, types.Params{
		"instance_type": "t3.micro",
		"region":        "us-east-1",
	})

	want := decimal.RequireFromString("0.0104")
	if !quote.UnitPrice.Equal(want) {
		t.Errorf("UnitPrice = %s, want %s", quote.UnitPrice, want)
	}
}

// TestEC2UnknownTypeUsesDefault verifies unknown instance types fall
// back to the default hourly price instead of failing
func TestEC2UnknownTypeUsesDefault(t *testing.T) {
	quote := mustEstimate(t, types.ServiceEC2, types.Params{
		"instance_type": "x99.colossal",
		"region":        "us-east-1",
	})

	want := decimal.RequireFromString("0.0416")
	if !quote.UnitPrice.Equal(want) {
		t.Errorf("UnitPrice = %s, want %s", quote.UnitPrice, want)
	}
	if quote.Unpriced {
		t.Error("Unpriced = true, default-priced quotes should not be flagged")
	}
}

// TestEstimateIsIdempotent verifies repeated estimates with identical
// parameters produce identical totals
func TestEstimateIsIdempotent(t *testing.T) {
	params := types.Params{
		"instance_type": "m5.large",
		"region":        "eu-west-1",
		"quantity":      3.0,
	}

	first := mustEstimate(t, types.ServiceEC2, params)
	for i := 0; i < 5; i++ {
		again := mustEstimate(t, types.ServiceEC2, params)
		if !again.TotalPrice.Equal(first.TotalPrice) {
			t.Fatalf("run %d: TotalPrice = %s, want %s", i, again.TotalPrice, first.TotalPrice)
		}
	}
}

// TestUnsupportedServiceKind verifies the registry rejects unknown kinds
func TestUnsupportedServiceKind(t *testing.T) {
	registry := NewDefaultRegistry()
	_, err := registry.Estimate(types.ServiceKind("DynamoDB"), nil)
	if err == nil {
		t.Fatal("expected error for unregistered service kind")
	}
	if !errors.IsType(err, errors.TypeNotSupported) {
		t.Errorf("error type = %v, want TypeNotSupported", err)
	}
}

// TestAllServiceKindsRegistered verifies the default registry covers
// every service kind
func TestAllServiceKindsRegistered(t *testing.T) {
	registry := NewDefaultRegistry()
	for _, kind := range types.AllServiceKinds() {
		if _, ok := registry.Get(kind); !ok {
			t.Errorf("no model registered for %s", kind)
		}
	}
}

// TestSubCostsSumToTotal verifies the sub-cost invariant for every
// model that itemizes components
func TestSubCostsSumToTotal(t *testing.T) {
	cases := []struct {
		kind   types.ServiceKind
		params types.Params
	}{
		{types.ServiceLambda, types.Params{"requests": 5.0, "memory": 512.0, "avg_duration": 250.0}},
		{types.ServiceFargate, types.Params{"vcpu": 2.0, "memory_gb": 4.0}},
		{types.ServiceECR, types.Params{"storage_gb": 25.0, "data_transfer_gb": 100.0}},
		{types.ServiceOpenSearch, types.Params{"instances": 3.0, "storage_gb": 50.0}},
		{types.ServiceRoute53, types.Params{"hosted_zones": 2.0, "queries_millions": 10.0}},
		{types.ServiceCloudWatch, types.Params{"ingestion_gb": 20.0, "alarms": 12.0}},
	}

	for _, tc := range cases {
		quote := mustEstimate(t, tc.kind, tc.params)
		if len(quote.SubCosts) == 0 {
			t.Errorf("%s: expected sub-costs", tc.kind)
			continue
		}
		if !quote.SubCostTotal().Equal(quote.TotalPrice) {
			t.Errorf("%s: sub-cost sum %s != total %s", tc.kind, quote.SubCostTotal(), quote.TotalPrice)
		}
	}
}

// TestDefaultsApplied verifies every model produces a positive total
// from an empty parameter set
func TestDefaultsApplied(t *testing.T) {
	for _, kind := range types.AllServiceKinds() {
		quote := mustEstimate(t, kind, types.Params{})
		if !quote.TotalPrice.IsPositive() {
			t.Errorf("%s: TotalPrice = %s with defaults, want positive", kind, quote.TotalPrice)
		}
		if quote.Service != kind {
			t.Errorf("%s: quote tagged %s", kind, quote.Service)
		}
	}
}

// TestS3StorageClassPricing verifies class-specific per-GB prices
func TestS3StorageClassPricing(t *testing.T) {
	standard := mustEstimate(t, types.ServiceS3, types.Params{
		"storage_gb":    100.0,
		"storage_class": "Standard",
		"region":        "us-east-1",
	})
	glacier := mustEstimate(t, types.ServiceS3, types.Params{
		"storage_gb":    100.0,
		"storage_class": "Glacier",
		"region":        "us-east-1",
	})

	if !standard.TotalPrice.GreaterThan(glacier.TotalPrice) {
		t.Errorf("Standard (%s) should cost more than Glacier (%s)",
			standard.TotalPrice, glacier.TotalPrice)
	}

	wantStandard := decimal.RequireFromString("2.3")
	if !standard.TotalPrice.Equal(wantStandard) {
		t.Errorf("Standard 100 GB = %s, want %s", standard.TotalPrice, wantStandard)
	}
}

// TestRegistryKindsOrder verifies Kinds follows the canonical service order
func TestRegistryKindsOrder(t *testing.T) {
	registry := NewDefaultRegistry()
	kinds := registry.Kinds()
	want := types.AllServiceKinds()
	if len(kinds) != len(want) {
		t.Fatalf("Kinds() returned %d kinds, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Kinds()[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
}

// Package pricing - Resolver fallback path tests
package pricing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"pricecalc/core/connectivity"
	"pricecalc/core/estimate"
	"pricecalc/core/fallback"
	"pricecalc/core/types"
	"pricecalc/internal/errors"
)

// failingSource fails every call and counts the attempts
type failingSource struct {
	calls int
}

func (s *failingSource) InstancePrice(ctx context.Context, instanceType, region, os string) (types.PriceRecord, error) {
	s.calls++
	return types.PriceRecord{}, errors.Network("connection refused", nil)
}

func (s *failingSource) InstanceSpec(ctx context.Context, instanceType string) (types.InstanceSpec, error) {
	s.calls++
	return types.InstanceSpec{}, errors.Network("connection refused", nil)
}

func (s *failingSource) InstanceTypes(ctx context.Context) ([]string, error) {
	s.calls++
	return nil, errors.Network("connection refused", nil)
}

func (s *failingSource) VolumePrice(ctx context.Context, volumeType, region string) (types.VolumeRecord, error) {
	s.calls++
	return types.VolumeRecord{}, errors.Network("connection refused", nil)
}

func (s *failingSource) Products(ctx context.Context, serviceCode string, filters []types.PricingFilter) ([]types.Product, error) {
	s.calls++
	return nil, errors.Network("connection refused", nil)
}

func offlineResolver() *Resolver {
	monitor := connectivity.NewMonitor()
	monitor.ForceOffline()
	return NewResolver(estimate.NewDefaultRegistry(), fallback.NewDispatcher(monitor), nil, 730)
}

func onlineResolverWith(live LiveSource) *Resolver {
	monitor := connectivity.NewMonitor()
	monitor.ForceOnline()
	return NewResolver(estimate.NewDefaultRegistry(), fallback.NewDispatcher(monitor), live, 730)
}

// TestForcedOfflineStaticPrice verifies the canonical static lookup
// under forced offline
func TestForcedOfflineStaticPrice(t *testing.T) {
	r := offlineResolver()

	record, err := r.ResolveInstancePrice(context.Background(), "t3.micro", "us-east-1", "Linux")
	if err != nil {
		t.Fatalf("ResolveInstancePrice failed: %v", err)
	}

	want := decimal.RequireFromString("0.0104")
	if !record.PricePerHour.Equal(want) {
		t.Errorf("PricePerHour = %s, want %s", record.PricePerHour, want)
	}
	if record.Source != types.SourceStatic {
		t.Errorf("Source = %s, want %s", record.Source, types.SourceStatic)
	}
	if !record.MonthlyCost.Equal(want.Mul(decimal.NewFromInt(730))) {
		t.Errorf("MonthlyCost = %s, want hourly * 730", record.MonthlyCost)
	}
}

// TestOfflineHeuristicTagged verifies a type missing from the static
// table gets an estimated price with a caveat note
func TestOfflineHeuristicTagged(t *testing.T) {
	r := offlineResolver()

	record, err := r.ResolveInstancePrice(context.Background(), "m6g.4xlarge", "ap-south-1", "Linux")
	if err != nil {
		t.Fatalf("ResolveInstancePrice failed: %v", err)
	}

	if record.Source != types.SourceEstimated {
		t.Errorf("Source = %s, want %s", record.Source, types.SourceEstimated)
	}
	if record.Note == "" {
		t.Error("estimated record carries no note")
	}
	if !record.PricePerHour.IsPositive() {
		t.Errorf("PricePerHour = %s, want positive", record.PricePerHour)
	}
}

// TestLiveFailureFallsBackToStatic verifies one live attempt, then
// the static answer
func TestLiveFailureFallsBackToStatic(t *testing.T) {
	live := &failingSource{}
	r := onlineResolverWith(live)

	record, err := r.ResolveInstancePrice(context.Background(), "t3.micro", "us-east-1", "Linux")
	if err != nil {
		t.Fatalf("ResolveInstancePrice failed: %v", err)
	}
	if live.calls != 1 {
		t.Errorf("live source called %d times, want 1", live.calls)
	}
	if record.Source != types.SourceStatic {
		t.Errorf("Source = %s, want %s after fallback", record.Source, types.SourceStatic)
	}
}

// TestOfflineNeverTouchesLive verifies the live source is not called
// under forced offline even when configured
func TestOfflineNeverTouchesLive(t *testing.T) {
	live := &failingSource{}
	monitor := connectivity.NewMonitor()
	monitor.ForceOffline()
	r := NewResolver(estimate.NewDefaultRegistry(), fallback.NewDispatcher(monitor), live, 730)

	if _, err := r.ResolveInstancePrice(context.Background(), "t3.micro", "us-east-1", "Linux"); err != nil {
		t.Fatalf("ResolveInstancePrice failed: %v", err)
	}
	if _, err := r.ListInstanceTypes(context.Background()); err != nil {
		t.Fatalf("ListInstanceTypes failed: %v", err)
	}
	if live.calls != 0 {
		t.Errorf("live source called %d times offline, want 0", live.calls)
	}
}

// TestForcedOfflineVolumePrice verifies volume lookups answer from the
// catalog offline
func TestForcedOfflineVolumePrice(t *testing.T) {
	r := offlineResolver()

	record, err := r.ResolveVolumePrice(context.Background(), "gp2", "us-east-1")
	if err != nil {
		t.Fatalf("ResolveVolumePrice failed: %v", err)
	}

	want := decimal.RequireFromString("0.1")
	if !record.PricePerGBMonth.Equal(want) {
		t.Errorf("PricePerGBMonth = %s, want %s", record.PricePerGBMonth, want)
	}
	if record.Source != types.SourceStatic {
		t.Errorf("Source = %s, want %s", record.Source, types.SourceStatic)
	}
}

// TestVolumePriceLiveFailureFallsBack verifies one live attempt, then
// the static volume price
func TestVolumePriceLiveFailureFallsBack(t *testing.T) {
	live := &failingSource{}
	r := onlineResolverWith(live)

	record, err := r.ResolveVolumePrice(context.Background(), "gp3", "eu-west-1")
	if err != nil {
		t.Fatalf("ResolveVolumePrice failed: %v", err)
	}
	if live.calls != 1 {
		t.Errorf("live source called %d times, want 1", live.calls)
	}
	want := decimal.RequireFromString("0.09")
	if !record.PricePerGBMonth.Equal(want) {
		t.Errorf("PricePerGBMonth = %s, want %s", record.PricePerGBMonth, want)
	}
	if record.Source != types.SourceStatic {
		t.Errorf("Source = %s, want %s after fallback", record.Source, types.SourceStatic)
	}
}

// TestVolumePriceUnknownType verifies an unknown volume type is an
// error rather than a zero price
func TestVolumePriceUnknownType(t *testing.T) {
	r := offlineResolver()

	_, err := r.ResolveVolumePrice(context.Background(), "gp9", "us-east-1")
	if err == nil {
		t.Fatal("expected error for unknown volume type")
	}
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("error = %v, want TypeNotFound", err)
	}
}

// TestResolveSpecsStatic verifies spec lookups answer from the catalog
// offline and report unknown types as not found
func TestResolveSpecsStatic(t *testing.T) {
	r := offlineResolver()

	spec, err := r.ResolveInstanceSpecs(context.Background(), "t3.micro")
	if err != nil {
		t.Fatalf("ResolveInstanceSpecs failed: %v", err)
	}
	if spec.VCPU != 2 {
		t.Errorf("t3.micro VCPU = %d, want 2", spec.VCPU)
	}

	_, err = r.ResolveInstanceSpecs(context.Background(), "q1.imaginary")
	if err == nil {
		t.Fatal("expected error for unknown instance type")
	}
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("error = %v, want TypeNotFound", err)
	}
}

// TestListInstanceTypesStatic verifies the offline list comes from the
// catalog
func TestListInstanceTypesStatic(t *testing.T) {
	r := offlineResolver()

	instanceTypes, err := r.ListInstanceTypes(context.Background())
	if err != nil {
		t.Fatalf("ListInstanceTypes failed: %v", err)
	}
	if len(instanceTypes) == 0 {
		t.Fatal("no instance types offline")
	}
	found := false
	for _, it := range instanceTypes {
		if it == "t3.micro" {
			found = true
			break
		}
	}
	if !found {
		t.Error("t3.micro missing from the offline instance type list")
	}
}

// TestEstimateDispatch verifies the resolver routes estimates to the
// registered model
func TestEstimateDispatch(t *testing.T) {
	r := offlineResolver()

	quote, err := r.EstimatePrice(types.ServiceRoute53, types.Params{"hosted_zones": 1.0, "queries_millions": 0.0})
	if err != nil {
		t.Fatalf("EstimatePrice failed: %v", err)
	}
	want := decimal.RequireFromString("0.5")
	if !quote.TotalPrice.Equal(want) {
		t.Errorf("TotalPrice = %s, want %s", quote.TotalPrice, want)
	}

	_, err = r.EstimatePrice(types.ServiceKind("Redshift"), nil)
	if !errors.IsType(err, errors.TypeNotSupported) {
		t.Errorf("error = %v, want TypeNotSupported", err)
	}
}

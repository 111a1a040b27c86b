// Package pricing - Facade over the cost models and the live/static
// instance price resolution pipeline
package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"pricecalc/core/catalog"
	"pricecalc/core/connectivity"
	"pricecalc/core/estimate"
	"pricecalc/core/fallback"
	"pricecalc/core/types"
	"pricecalc/internal/errors"
)

// LiveSource answers pricing queries from the provider's API. Every
// method may fail with a network or parse error; the resolver falls
// back to the static catalog when it does.
type LiveSource interface {
	InstancePrice(ctx context.Context, instanceType, region, os string) (types.PriceRecord, error)
	InstanceSpec(ctx context.Context, instanceType string) (types.InstanceSpec, error)
	InstanceTypes(ctx context.Context) ([]string, error)
	VolumePrice(ctx context.Context, volumeType, region string) (types.VolumeRecord, error)
	Products(ctx context.Context, serviceCode string, filters []types.PricingFilter) ([]types.Product, error)
}

// Resolver is the single entry point callers use for price questions.
// It dispatches estimates to the model registry and routes instance
// lookups through the fallback dispatcher.
type Resolver struct {
	registry      *estimate.Registry
	dispatcher    *fallback.Dispatcher
	live          LiveSource
	hoursPerMonth decimal.Decimal
}

// NewResolver creates a resolver. live may be nil, in which case
// every lookup is served from the static catalog.
func NewResolver(registry *estimate.Registry, dispatcher *fallback.Dispatcher, live LiveSource, hoursPerMonth float64) *Resolver {
	return &Resolver{
		registry:      registry,
		dispatcher:    dispatcher,
		live:          live,
		hoursPerMonth: decimal.NewFromFloat(hoursPerMonth),
	}
}

// EstimatePrice produces a cost estimate for the given service kind
func (r *Resolver) EstimatePrice(kind types.ServiceKind, params types.Params) (types.PriceQuote, error) {
	return r.registry.Estimate(kind, params)
}

// Services returns the service kinds the resolver can estimate
func (r *Resolver) Services() []types.ServiceKind {
	return r.registry.Kinds()
}

// Monitor exposes the connectivity monitor behind the dispatcher
func (r *Resolver) Monitor() *connectivity.Monitor {
	return r.dispatcher.Monitor()
}

type instanceQuery struct {
	instanceType string
	region       string
	os           string
}

// ResolveInstancePrice returns the hourly and monthly price for an
// instance type. The live API is consulted first when the monitor
// reports online; otherwise the static catalog answers, and when the
// catalog has no exact entry a heuristic estimate is produced and the
// record is tagged accordingly.
func (r *Resolver) ResolveInstancePrice(ctx context.Context, instanceType, region, os string) (types.PriceRecord, error) {
	op := fallback.Operation[instanceQuery, types.PriceRecord]{
		Name:   "resolve_instance_price",
		Live:   r.liveInstancePrice,
		Static: r.staticInstancePrice,
	}
	return fallback.Resolve(ctx, r.dispatcher, op, instanceQuery{instanceType, region, os})
}

func (r *Resolver) liveInstancePrice(ctx context.Context, q instanceQuery) (types.PriceRecord, error) {
	if r.live == nil {
		return types.PriceRecord{}, errors.Network("no live pricing source configured", nil)
	}
	rec, err := r.live.InstancePrice(ctx, q.instanceType, q.region, q.os)
	if err != nil {
		return types.PriceRecord{}, err
	}
	rec.Source = types.SourceAPI
	rec.HoursPerMonth = r.hoursPerMonth
	rec.MonthlyCost = rec.PricePerHour.Mul(r.hoursPerMonth)
	return rec, nil
}

func (r *Resolver) staticInstancePrice(_ context.Context, q instanceQuery) (types.PriceRecord, error) {
	rec := types.PriceRecord{
		InstanceType:    q.instanceType,
		Region:          q.region,
		OperatingSystem: q.os,
		HoursPerMonth:   r.hoursPerMonth,
	}

	if price, ok := catalog.StaticInstancePrice(q.instanceType, q.region, q.os); ok {
		rec.PricePerHour = price
		rec.Source = types.SourceStatic
	} else {
		price, err := catalog.EstimateHourlyPrice(q.instanceType, q.region, q.os)
		if err != nil {
			return types.PriceRecord{}, err
		}
		rec.PricePerHour = price
		rec.Source = types.SourceEstimated
		rec.Note = fmt.Sprintf("no catalog entry for %s in %s; price estimated from instance family", q.instanceType, q.region)
	}

	rec.MonthlyCost = rec.PricePerHour.Mul(r.hoursPerMonth)
	return rec, nil
}

type volumeQuery struct {
	volumeType string
	region     string
}

// ResolveVolumePrice returns the monthly per-GB price for an EBS
// volume type. The live API is consulted first when the monitor
// reports online; otherwise the static catalog answers. Unknown
// volume types are an error, not a zero price.
func (r *Resolver) ResolveVolumePrice(ctx context.Context, volumeType, region string) (types.VolumeRecord, error) {
	op := fallback.Operation[volumeQuery, types.VolumeRecord]{
		Name:   "resolve_volume_price",
		Live:   r.liveVolumePrice,
		Static: r.staticVolumePrice,
	}
	return fallback.Resolve(ctx, r.dispatcher, op, volumeQuery{volumeType, region})
}

func (r *Resolver) liveVolumePrice(ctx context.Context, q volumeQuery) (types.VolumeRecord, error) {
	if r.live == nil {
		return types.VolumeRecord{}, errors.Network("no live pricing source configured", nil)
	}
	rec, err := r.live.VolumePrice(ctx, q.volumeType, q.region)
	if err != nil {
		return types.VolumeRecord{}, err
	}
	rec.Source = types.SourceAPI
	return rec, nil
}

func (r *Resolver) staticVolumePrice(_ context.Context, q volumeQuery) (types.VolumeRecord, error) {
	price, ok := catalog.EBSVolumePrice(q.volumeType, q.region)
	if !ok {
		return types.VolumeRecord{}, errors.NotFound("volume type", q.volumeType)
	}
	return types.VolumeRecord{
		VolumeType:      q.volumeType,
		Region:          q.region,
		PricePerGBMonth: price,
		Source:          types.SourceStatic,
	}, nil
}

// ResolveInstanceSpecs returns hardware specs for an instance type
func (r *Resolver) ResolveInstanceSpecs(ctx context.Context, instanceType string) (types.InstanceSpec, error) {
	op := fallback.Operation[string, types.InstanceSpec]{
		Name: "resolve_instance_specs",
		Live: func(ctx context.Context, t string) (types.InstanceSpec, error) {
			if r.live == nil {
				return types.InstanceSpec{}, errors.Network("no live pricing source configured", nil)
			}
			return r.live.InstanceSpec(ctx, t)
		},
		Static: func(_ context.Context, t string) (types.InstanceSpec, error) {
			spec, ok := catalog.Spec(t)
			if !ok {
				return types.InstanceSpec{}, errors.NotFound("instance type", t)
			}
			return spec, nil
		},
	}
	return fallback.Resolve(ctx, r.dispatcher, op, instanceType)
}

// ListInstanceTypes returns the known instance type names, sorted
func (r *Resolver) ListInstanceTypes(ctx context.Context) ([]string, error) {
	op := fallback.Operation[struct{}, []string]{
		Name: "list_instance_types",
		Live: func(ctx context.Context, _ struct{}) ([]string, error) {
			if r.live == nil {
				return nil, errors.Network("no live pricing source configured", nil)
			}
			return r.live.InstanceTypes(ctx)
		},
		Static: func(_ context.Context, _ struct{}) ([]string, error) {
			return catalog.InstanceTypes(), nil
		},
	}
	return fallback.Resolve(ctx, r.dispatcher, op, struct{}{})
}

// Products returns raw pricing products for a service code, filtered.
// Falls back to the bundled synthetic product set when offline.
func (r *Resolver) Products(ctx context.Context, serviceCode string, filters []types.PricingFilter) ([]types.Product, error) {
	op := fallback.Operation[[]types.PricingFilter, []types.Product]{
		Name: "get_products",
		Live: func(ctx context.Context, f []types.PricingFilter) ([]types.Product, error) {
			if r.live == nil {
				return nil, errors.Network("no live pricing source configured", nil)
			}
			return r.live.Products(ctx, serviceCode, f)
		},
		Static: func(_ context.Context, f []types.PricingFilter) ([]types.Product, error) {
			return catalog.Products(serviceCode, f), nil
		},
	}
	return fallback.Resolve(ctx, r.dispatcher, op, filters)
}

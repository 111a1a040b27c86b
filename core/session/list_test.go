// Package session - Resource list and export tests
package session

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"pricecalc/core/types"
)

func quoteWithTotal(kind types.ServiceKind, total string) types.PriceQuote {
	return types.PriceQuote{
		Service:    kind,
		UnitPrice:  decimal.RequireFromString(total),
		Quantity:   decimal.NewFromInt(1),
		TotalPrice: decimal.RequireFromString(total),
	}
}

// TestTotalAggregation verifies the running total sums resource totals
// exactly
func TestTotalAggregation(t *testing.T) {
	list := NewList()
	list.Add("web-server", quoteWithTotal(types.ServiceEC2, "9.73"))
	list.Add("assets-bucket", quoteWithTotal(types.ServiceS3, "2.30"))
	list.Add("dns-zone", quoteWithTotal(types.ServiceRoute53, "0.50"))

	want := decimal.RequireFromString("12.53")
	got := list.Total()
	if got.Sub(want).Abs().GreaterThan(decimal.New(1, -6)) {
		t.Errorf("Total() = %s, want %s", got, want)
	}
	if list.Len() != 3 {
		t.Errorf("Len() = %d, want 3", list.Len())
	}
}

// TestExportRoundTrip verifies an export parses back to the same
// resources and total
func TestExportRoundTrip(t *testing.T) {
	list := NewList()
	list.Add("web-server", types.PriceQuote{
		Service:      types.ServiceEC2,
		UnitPrice:    decimal.RequireFromString("0.01352"),
		Quantity:     decimal.NewFromInt(720),
		MonthlyHours: decimal.NewFromInt(720),
		TotalPrice:   decimal.RequireFromString("9.7344"),
	})
	list.Add("functions", types.PriceQuote{
		Service:   types.ServiceLambda,
		UnitPrice: decimal.RequireFromString("0.0000166667"),
		Quantity:  decimal.RequireFromString("12500"),
		SubCosts: []types.SubCost{
			{Name: "duration_cost", Amount: decimal.RequireFromString("0.20833375")},
			{Name: "requests_cost", Amount: decimal.RequireFromString("0.20")},
		},
		TotalPrice: decimal.RequireFromString("0.40833375"),
	})

	data, err := list.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	parsed, err := ParseExport(data)
	if err != nil {
		t.Fatalf("ParseExport failed: %v", err)
	}

	if len(parsed.Resources) != 2 {
		t.Fatalf("parsed %d resources, want 2", len(parsed.Resources))
	}
	if !parsed.TotalCost.Equal(list.Total()) {
		t.Errorf("parsed total %s != original %s", parsed.TotalCost, list.Total())
	}

	for i, res := range parsed.Resources {
		orig := list.Resources()[i]
		if res.Label != orig.Label {
			t.Errorf("resource %d label %q != %q", i, res.Label, orig.Label)
		}
		if !res.TotalPrice.Equal(orig.TotalPrice) {
			t.Errorf("resource %d total %s != %s", i, res.TotalPrice, orig.TotalPrice)
		}
		if !res.UnitPrice.Equal(orig.UnitPrice) {
			t.Errorf("resource %d unit price %s != %s", i, res.UnitPrice, orig.UnitPrice)
		}
		if len(res.SubCosts) != len(orig.SubCosts) {
			t.Errorf("resource %d has %d sub-costs, want %d", i, len(res.SubCosts), len(orig.SubCosts))
		}
	}
}

// TestExportNumericJSON verifies prices serialize as JSON numbers,
// not strings
func TestExportNumericJSON(t *testing.T) {
	list := NewList()
	list.Add("web-server", quoteWithTotal(types.ServiceEC2, "9.7344"))

	data, err := list.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var doc struct {
		Resources []map[string]interface{} `json:"resources"`
		TotalCost interface{}              `json:"total_cost"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if _, ok := doc.TotalCost.(float64); !ok {
		t.Errorf("total_cost decoded as %T, want a JSON number", doc.TotalCost)
	}
	if _, ok := doc.Resources[0]["total_price"].(float64); !ok {
		t.Errorf("total_price decoded as %T, want a JSON number", doc.Resources[0]["total_price"])
	}
}

// TestEmptyListExport verifies an empty session exports resources as
// an empty array and total zero
func TestEmptyListExport(t *testing.T) {
	data, err := NewList().Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	parsed, err := ParseExport(data)
	if err != nil {
		t.Fatalf("ParseExport failed: %v", err)
	}
	if len(parsed.Resources) != 0 {
		t.Errorf("parsed %d resources from an empty list", len(parsed.Resources))
	}
	if !parsed.TotalCost.IsZero() {
		t.Errorf("total = %s, want 0", parsed.TotalCost)
	}
}

// TestClear verifies Clear empties the list
func TestClear(t *testing.T) {
	list := NewList()
	list.Add("a", quoteWithTotal(types.ServiceS3, "1.00"))
	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", list.Len())
	}
	if !list.Total().IsZero() {
		t.Errorf("Total() = %s after Clear, want 0", list.Total())
	}
}

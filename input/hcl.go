// Package input - HCL batch files describing resources to estimate
package input

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"pricecalc/core/types"
	"pricecalc/internal/errors"
)

// Request is one resource block read from a batch file
type Request struct {
	// Label is the block's user-supplied name
	Label string

	// Service is the service kind to estimate
	Service types.ServiceKind

	// Params are the block's attributes as estimation parameters
	Params types.Params
}

// Loader parses estimation batch files. Files use HCL with one
// `resource "<SERVICE>" "<label>" { ... }` block per resource.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a batch file loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

// Load reads and parses one batch file
func (l *Loader) Load(path string) ([]Request, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "failed to read batch file "+path, err)
	}
	return l.Parse(src, path)
}

// Parse parses batch file source. filename is used in diagnostics only.
func (l *Loader) Parse(src []byte, filename string) ([]Request, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Newf(errors.TypeInput, "failed to parse %s: %s", filename, diags.Error())
	}

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "resource", LabelNames: []string{"service", "label"}},
		},
	})
	if diags.HasErrors() {
		return nil, errors.Newf(errors.TypeInput, "invalid batch file %s: %s", filename, diags.Error())
	}

	requests := make([]Request, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		if len(block.Labels) < 2 {
			continue
		}

		service := types.ServiceKind(block.Labels[0])
		if !validService(service) {
			return nil, errors.Newf(errors.TypeInput, "%s:%d: unknown service %q",
				filename, block.DefRange.Start.Line, block.Labels[0])
		}

		params, err := extractParams(block.Body, filename)
		if err != nil {
			return nil, err
		}

		requests = append(requests, Request{
			Label:   block.Labels[1],
			Service: service,
			Params:  params,
		})
	}

	return requests, nil
}

func validService(kind types.ServiceKind) bool {
	for _, k := range types.AllServiceKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

func extractParams(body hcl.Body, filename string) (types.Params, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.Newf(errors.TypeInput, "invalid resource block in %s: %s", filename, diags.Error())
	}

	params := make(types.Params, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.Newf(errors.TypeInput, "%s:%d: attribute %q is not a literal value",
				filename, attr.Range.Start.Line, name)
		}

		goVal, err := ctyToGo(val)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeInput, err, "%s:%d: attribute %q",
				filename, attr.Range.Start.Line, name)
		}
		params[name] = goVal
	}

	return params, nil
}

func ctyToGo(val cty.Value) (interface{}, error) {
	if val.IsNull() {
		return nil, nil
	}

	switch val.Type() {
	case cty.String:
		return val.AsString(), nil
	case cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	case cty.Bool:
		return val.True(), nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", val.Type().FriendlyName())
	}
}

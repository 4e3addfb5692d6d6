package manifest

import (
	"fmt"

	"github.com/vk/tracegraph/internal/funcspec"
	"github.com/vk/tracegraph/internal/schema"
	"github.com/vk/tracegraph/internal/spec"
	"github.com/vk/tracegraph/internal/tensor"
)

// translateFunction converts a decoded function block into a descriptor.
func translateFunction(fn *schema.Function) (*funcspec.Descriptor, error) {
	argNames := make([]string, 0, len(fn.Args))
	defaults := make(map[string]any)

	for _, arg := range fn.Args {
		argNames = append(argNames, arg.Name)
		// A default only counts if it evaluated to a non-null value.
		if arg.Default != nil && !arg.Default.IsNull() {
			native, err := ctyToNative(*arg.Default)
			if err != nil {
				return nil, fmt.Errorf("function %q, arg %q: invalid default: %w", fn.Name, arg.Name, err)
			}
			defaults[arg.Name] = native
		}
	}

	var inputSpec any
	if len(fn.Inputs) > 0 {
		specs := make([]any, 0, len(fn.Inputs))
		for _, in := range fn.Inputs {
			dtype, err := tensor.ParseDType(in.DType)
			if err != nil {
				return nil, fmt.Errorf("function %q, input %q: %w", fn.Name, in.ArgName, err)
			}
			specs = append(specs, spec.New(dtype, in.Shape).Named(in.ArgName))
		}
		inputSpec = specs
	}

	d, err := funcspec.NewDescriptor(fn.Name, argNames, defaults, inputSpec)
	if err != nil {
		return nil, fmt.Errorf("function %q: %w", fn.Name, err)
	}
	return d, nil
}

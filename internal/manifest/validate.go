package manifest

import (
	"fmt"
	"strings"

	"github.com/vk/tracegraph/internal/schema"
	"github.com/vk/tracegraph/internal/tensor"
)

// validateFunctions performs a strict structural check over all decoded
// function blocks before any descriptor is built, collecting every problem
// instead of stopping at the first one.
func validateFunctions(functions []*schema.Function) error {
	var errs []string

	seen := make(map[string]struct{}, len(functions))
	for _, fn := range functions {
		if _, dup := seen[fn.Name]; dup {
			errs = append(errs, fmt.Sprintf("function %q: declared more than once", fn.Name))
		}
		seen[fn.Name] = struct{}{}
		errs = append(errs, validateFunction(fn)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func validateFunction(fn *schema.Function) []string {
	var errs []string

	argIndex := make(map[string]int, len(fn.Args))
	for i, arg := range fn.Args {
		if _, dup := argIndex[arg.Name]; dup {
			errs = append(errs, fmt.Sprintf("function %q: arg %q declared more than once", fn.Name, arg.Name))
			continue
		}
		argIndex[arg.Name] = i
	}

	if len(fn.Inputs) > len(fn.Args) {
		errs = append(errs, fmt.Sprintf("function %q: %d input blocks for %d declared args", fn.Name, len(fn.Inputs), len(fn.Args)))
	}

	for i, in := range fn.Inputs {
		pos, declared := argIndex[in.ArgName]
		if !declared {
			errs = append(errs, fmt.Sprintf("function %q: input block %q does not match any declared arg", fn.Name, in.ArgName))
			continue
		}
		// Specs bind positionally, so the i-th input block must describe
		// the i-th argument. Anything else would silently bind wrong
		// values at trace time.
		if pos != i {
			errs = append(errs, fmt.Sprintf("function %q: input block %q is at position %d, but arg %q is declared at position %d",
				fn.Name, in.ArgName, i, in.ArgName, pos))
		}
		for axis, dim := range in.Shape {
			if dim == 0 || dim < tensor.DynamicDim {
				errs = append(errs, fmt.Sprintf("function %q, input %q: invalid dimension %d at axis %d (use %d for an unknown dimension)",
					fn.Name, in.ArgName, dim, axis, tensor.DynamicDim))
			}
		}
	}

	return errs
}

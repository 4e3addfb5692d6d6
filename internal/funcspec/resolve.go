package funcspec

import (
	"context"

	"github.com/vk/tracegraph/internal/nest"
	"github.com/vk/tracegraph/internal/spec"
	"github.com/vk/tracegraph/internal/tensor"
)

// Resolve converts bound arguments into a parallel nested structure whose
// tensor-like leaves are replaced by input descriptors.
//
// With a declared input spec, the spec is merged positionally over the
// arguments (see ConvertToInputSpec); residual keyword arguments are
// rejected because the merge is purely structural. Without a declared spec,
// every raw array and framework tensor found in the argument tree is
// replaced by a descriptor derived from its own shape and dtype, and every
// other leaf passes through as a compile-time constant.
func (d *Descriptor) Resolve(ctx context.Context, args nest.Tuple, kwargs map[string]any) (any, error) {
	if d.inputSpec != nil {
		// The value types and nesting of residual kwargs are unknowable at
		// declaration time, so a declared spec forbids them outright.
		if len(kwargs) > 0 {
			return nil, &UnsupportedKeywordsError{Function: d.name, Kwargs: kwargs}
		}
		// The spec may be shorter than args: binding can move non-tensor
		// defaults into trailing positions the spec never mentions.
		if len(args) < len(d.inputSpec) {
			return nil, &InsufficientArgumentsError{Function: d.name, NumArgs: len(args), NumSpec: len(d.inputSpec)}
		}
		return ConvertToInputSpec(ctx, args, d.inputSpec)
	}

	flat := nest.Flatten(args)
	resolved := make([]any, len(flat))
	for i, leaf := range flat {
		switch nest.KindOf(leaf) {
		case nest.KindArray:
			resolved[i] = spec.FromArray(leaf.(*tensor.Array))
		case nest.KindTensor:
			resolved[i] = spec.FromTensor(leaf.(*tensor.Tensor))
		default:
			resolved[i] = leaf
		}
	}
	return nest.Pack(args, resolved)
}

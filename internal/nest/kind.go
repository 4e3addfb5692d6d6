package nest

import "github.com/vk/tracegraph/internal/tensor"

// Kind is the closed classification of a value inside a nested argument
// tree. It is determined once per value and dispatched on afterwards,
// instead of scattering type assertions through every stage of the tracer.
type Kind int

const (
	// KindConstant is any leaf that is neither an array nor a tensor; it is
	// traced as a compile-time constant, not a graph input.
	KindConstant Kind = iota
	// KindArray is a raw host array (*tensor.Array).
	KindArray
	// KindTensor is a framework-managed handle (*tensor.Tensor).
	KindTensor
	// KindSequence is a list or tuple container.
	KindSequence
	// KindMapping is a string-keyed mapping container.
	KindMapping
)

// KindOf classifies a single value.
func KindOf(v any) Kind {
	switch v.(type) {
	case []any, Tuple:
		return KindSequence
	case map[string]any:
		return KindMapping
	case *tensor.Array:
		return KindArray
	case *tensor.Tensor:
		return KindTensor
	default:
		return KindConstant
	}
}

// IsTensorLike reports whether v is a value the tracer would normally feed
// through a placeholder: a raw array or a framework tensor.
func IsTensorLike(v any) bool {
	k := KindOf(v)
	return k == KindArray || k == KindTensor
}

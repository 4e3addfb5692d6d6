package funcspec

import (
	"context"

	"github.com/vk/tracegraph/internal/ctxlog"
	"github.com/vk/tracegraph/internal/nest"
	"github.com/vk/tracegraph/internal/spec"
)

// ConvertToInputSpec recursively merges a structured argument tree with a
// possibly shorter parallel spec tree. Positions covered by the spec are
// replaced by their descriptor; positions beyond the spec pass through
// unchanged. Matching is strictly positional for sequences and key-based
// for mappings. Values are never matched by type or shape, so a reordered
// call site binds wrong values silently.
//
// A tensor-like value left uncovered by the spec is passed through with a
// warning: it will be traced as an immutable constant rather than a graph
// input. That permissiveness mirrors long-standing tracer behavior; whether
// it masks user mistakes is an open question, so it warns rather than fails.
func ConvertToInputSpec(ctx context.Context, inputs, inputSpec any) (any, error) {
	// Top-level lengths are threaded through so that a mismatch deep in the
	// tree still reports numbers the user can see at the call site.
	return mergeSpec(ctx, inputs, inputSpec, lengthOf(inputs), lengthOf(inputSpec))
}

func lengthOf(tree any) int {
	switch v := tree.(type) {
	case []any:
		return len(v)
	case nest.Tuple:
		return len(v)
	case map[string]any:
		return len(v)
	default:
		return 1
	}
}

func mergeSpec(ctx context.Context, inputs, inputSpec any, rootInputsLen, rootSpecLen int) (any, error) {
	switch specTree := inputSpec.(type) {
	case []any, nest.Tuple:
		specElems := asSequence(specTree)
		inputElems, ok := matchingSequence(inputs, specTree)
		if !ok {
			return nil, &StructureTypeMismatchError{Spec: inputSpec, Inputs: inputs}
		}
		if len(inputElems) < len(specElems) {
			return nil, &StructureLengthMismatchError{InputsLen: rootInputsLen, SpecLen: rootSpecLen}
		}

		merged := make([]any, 0, len(inputElems))
		for i, elemSpec := range specElems {
			out, err := mergeSpec(ctx, inputElems[i], elemSpec, rootInputsLen, rootSpecLen)
			if err != nil {
				return nil, err
			}
			merged = append(merged, out)
		}
		for i := len(specElems); i < len(inputElems); i++ {
			rest := inputElems[i]
			if nest.IsTensorLike(rest) {
				ctxlog.FromContext(ctx).Warn(
					"Input has no matching input spec entry; its value will be traced as an immutable constant. Declare it in input_spec if you expect a mutable graph input.",
					"position", i, "value", rest)
			}
			merged = append(merged, rest)
		}

		if _, isTuple := specTree.(nest.Tuple); isTuple {
			return nest.Tuple(merged), nil
		}
		return merged, nil

	case map[string]any:
		inputMap, ok := inputs.(map[string]any)
		if !ok {
			return nil, &StructureTypeMismatchError{Spec: inputSpec, Inputs: inputs}
		}
		if len(inputMap) < len(specTree) {
			return nil, &StructureLengthMismatchError{InputsLen: rootInputsLen, SpecLen: rootSpecLen}
		}

		merged := make(map[string]any, len(inputMap))
		for name, value := range inputMap {
			elemSpec, covered := specTree[name]
			if !covered {
				merged[name] = value
				continue
			}
			out, err := mergeSpec(ctx, value, elemSpec, rootInputsLen, rootSpecLen)
			if err != nil {
				return nil, err
			}
			merged[name] = out
		}
		return merged, nil

	case *spec.Input:
		// The descriptor fully replaces the concrete value at this slot.
		return specTree, nil

	default:
		return nil, &InvalidSpecLeafError{Value: inputSpec}
	}
}

// asSequence returns the elements of a list or tuple.
func asSequence(tree any) []any {
	switch v := tree.(type) {
	case []any:
		return v
	case nest.Tuple:
		return v
	default:
		return nil
	}
}

// matchingSequence returns inputs' elements when inputs has the same
// container type as specTree (list with list, tuple with tuple).
func matchingSequence(inputs, specTree any) ([]any, bool) {
	switch specTree.(type) {
	case []any:
		v, ok := inputs.([]any)
		return v, ok
	case nest.Tuple:
		v, ok := inputs.(nest.Tuple)
		return v, ok
	default:
		return nil, false
	}
}

// Package nest is the structural walker for nested argument trees.
//
// # Why nest exists
//
// Traced functions receive arbitrarily nested arrangements of values: lists,
// tuples and string-keyed mappings, nested to any depth, with anything else
// treated as an opaque leaf. Several stages of the tracer (spec derivation,
// spec merging, placeholder construction) all need the same two operations
// over such trees: flatten a tree into an ordered sequence of leaves, and
// pack a flat sequence back into the shape of a template tree. Centralizing
// the walk here keeps leaf ordering identical across every stage, which is
// what makes flatten-transform-pack round trips safe.
//
// # Containers and leaves
//
// Three container types are recognized: []any (list), Tuple (fixed-arity
// sequence, deliberately distinct from list) and map[string]any (mapping).
// Everything else is a leaf. Mappings are traversed in sorted key order so
// that flatten order is stable across runs.
package nest

import (
	"fmt"
	"sort"
)

// Tuple is a fixed-arity sequence. It is a distinct type from []any on
// purpose: two trees only match structurally when their container kinds
// agree position by position, so a list never stands in for a tuple.
type Tuple []any

// Flatten walks tree depth-first and returns its leaves in traversal order.
// A leaf tree (anything that is not a recognized container) flattens to a
// single-element slice.
func Flatten(tree any) []any {
	var out []any
	switch v := tree.(type) {
	case []any:
		for _, elem := range v {
			out = append(out, Flatten(elem)...)
		}
	case Tuple:
		for _, elem := range v {
			out = append(out, Flatten(elem)...)
		}
	case map[string]any:
		for _, key := range sortedKeys(v) {
			out = append(out, Flatten(v[key])...)
		}
	default:
		out = append(out, tree)
	}
	return out
}

// Pack rebuilds a tree with the same shape as template, replacing its leaves
// positionally with flat. It fails if flat does not hold exactly as many
// values as template has leaves.
func Pack(template any, flat []any) (any, error) {
	packed, rest, err := pack(template, flat)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("pack received %d values, but template has only %d leaves", len(flat), len(flat)-len(rest))
	}
	return packed, nil
}

// pack consumes values from flat while mirroring template, returning the
// rebuilt subtree and whatever remains of flat.
func pack(template any, flat []any) (any, []any, error) {
	switch v := template.(type) {
	case []any:
		out := make([]any, 0, len(v))
		for _, elem := range v {
			packed, rest, err := pack(elem, flat)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, packed)
			flat = rest
		}
		return out, flat, nil
	case Tuple:
		out := make(Tuple, 0, len(v))
		for _, elem := range v {
			packed, rest, err := pack(elem, flat)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, packed)
			flat = rest
		}
		return out, flat, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for _, key := range sortedKeys(v) {
			packed, rest, err := pack(v[key], flat)
			if err != nil {
				return nil, nil, err
			}
			out[key] = packed
			flat = rest
		}
		return out, flat, nil
	default:
		if len(flat) == 0 {
			return nil, nil, fmt.Errorf("pack ran out of values: template has more leaves than the flat sequence provides")
		}
		return flat[0], flat[1:], nil
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

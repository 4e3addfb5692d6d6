package funcspec

import (
	"fmt"
	"strings"

	"github.com/vk/tracegraph/internal/nest"
	"github.com/vk/tracegraph/internal/spec"
)

// Descriptor wraps one traced function: its declared argument names (in
// declaration order, receiver excluded), default values, and an optional
// verified input spec. A Descriptor is constructed once per function and
// reused across every invocation; the spec, once verified, is never
// mutated.
type Descriptor struct {
	name     string
	argNames []string
	defaults map[string]any

	inputSpec     nest.Tuple // nil when no spec was declared
	flatInputSpec []any
}

// NewDescriptor builds a descriptor for the named function. argNames is the
// ordered declared parameter list; defaults maps a subset of those names to
// their default values. inputSpec may be nil; when present it must be a
// list or tuple whose leaves are all *spec.Input.
func NewDescriptor(name string, argNames []string, defaults map[string]any, inputSpec any) (*Descriptor, error) {
	d := &Descriptor{
		name:     name,
		argNames: append([]string(nil), argNames...),
		defaults: make(map[string]any, len(defaults)),
	}
	for k, v := range defaults {
		d.defaults[k] = v
	}

	if inputSpec != nil {
		verified, err := verifyInputSpec(inputSpec)
		if err != nil {
			return nil, err
		}
		d.inputSpec = verified
		d.flatInputSpec = nest.Flatten(verified)
	}
	return d, nil
}

// verifyInputSpec checks that the declared spec is a sequence whose leaves
// are all input descriptors, and freezes it as a tuple.
func verifyInputSpec(inputSpec any) (nest.Tuple, error) {
	var elems []any
	switch v := inputSpec.(type) {
	case nest.Tuple:
		elems = v
	case []any:
		elems = v
	default:
		return nil, &InvalidSpecContainerError{Value: inputSpec}
	}

	frozen := make(nest.Tuple, len(elems))
	copy(frozen, elems)

	for _, leaf := range nest.Flatten(frozen) {
		if _, ok := leaf.(*spec.Input); !ok {
			return nil, &InvalidSpecLeafError{Value: leaf}
		}
	}
	return frozen, nil
}

// FunctionName returns the traced function's name.
func (d *Descriptor) FunctionName() string { return d.name }

// ArgNames returns the declared argument names in declaration order.
func (d *Descriptor) ArgNames() []string { return append([]string(nil), d.argNames...) }

// Defaults returns a copy of the declared default values.
func (d *Descriptor) Defaults() map[string]any {
	out := make(map[string]any, len(d.defaults))
	for k, v := range d.defaults {
		out[k] = v
	}
	return out
}

// InputSpec returns the declared input spec, or nil when none was given.
func (d *Descriptor) InputSpec() any {
	if d.inputSpec == nil {
		return nil
	}
	return d.inputSpec
}

// FlatInputSpec returns the flattened declared spec, or nil when none was
// given.
func (d *Descriptor) FlatInputSpec() []any {
	return append([]any(nil), d.flatInputSpec...)
}

func (d *Descriptor) String() string {
	specStr := "<none>"
	if d.inputSpec != nil {
		specStr = fmt.Sprintf("%v", d.inputSpec)
	}
	return fmt.Sprintf("function: %s(%s), input_spec: %s", d.name, strings.Join(d.argNames, ", "), specStr)
}

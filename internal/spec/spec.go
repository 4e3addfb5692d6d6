// Package spec defines the abstract description of one graph input slot:
// its shape (with -1 for dimensions unknown until feed time), element dtype
// and an optional name. An Input is a pure value; it has no identity beyond
// its fields and is safe to share between descriptors and graphs.
package spec

import (
	"fmt"

	"github.com/vk/tracegraph/internal/tensor"
)

// Input describes one input slot of a traced function.
type Input struct {
	Shape []int
	DType tensor.DType
	// Name is the placeholder name to use in the graph. When empty, the
	// placeholder builder generates one from the slot's flat position.
	Name string
}

// New creates an Input with an explicit shape and dtype and no name.
func New(dtype tensor.DType, shape []int) *Input {
	return &Input{Shape: append([]int(nil), shape...), DType: dtype}
}

// Named returns a copy of the input carrying the given placeholder name.
func (s *Input) Named(name string) *Input {
	return &Input{Shape: append([]int(nil), s.Shape...), DType: s.DType, Name: name}
}

// FromArray derives an Input from a raw host array's shape and dtype.
func FromArray(a *tensor.Array) *Input {
	return &Input{Shape: a.Shape(), DType: a.DType()}
}

// FromTensor derives an Input from a framework tensor's runtime metadata,
// keeping its name.
func FromTensor(t *tensor.Tensor) *Input {
	return &Input{Shape: t.Shape(), DType: t.DType(), Name: t.Name()}
}

func (s *Input) String() string {
	name := "<generated>"
	if s.Name != "" {
		name = fmt.Sprintf("%q", s.Name)
	}
	return fmt.Sprintf("InputSpec(shape=%s, dtype=%s, name=%s)", tensor.ShapeString(s.Shape), s.DType, name)
}

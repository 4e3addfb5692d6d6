// Package tensor defines the two concrete value kinds the tracer can turn
// into graph inputs: a raw host Array and a framework-managed Tensor handle.
//
// Neither type carries any compute capability. The tracer only ever inspects
// shape, dtype and (for tensors) the runtime name, so both are thin value
// types. Anything that is not an Array or a Tensor is treated by the tracer
// as a plain compile-time constant.
package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// DynamicDim marks a dimension whose extent is unknown until feed time.
const DynamicDim = -1

// ShapeString renders a shape as "[-1, 4]" with DynamicDim kept as -1.
func ShapeString(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// numElements returns the product of all dimensions, or -1 if any dimension
// is dynamic.
func numElements(shape []int) int {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return -1
		}
		n *= d
	}
	return n
}

// Array is a raw numeric host array: concrete shape, dtype and a flat
// backing slice. It models data the user hands in directly (the equivalent
// of an ndarray) rather than a value already managed by the framework.
type Array struct {
	shape []int
	dtype DType
	data  any
}

// NewArray wraps a flat backing slice with shape and dtype metadata. The
// backing slice length must match the shape's element count; an Array never
// has dynamic dimensions.
func NewArray(dtype DType, shape []int, data any) (*Array, error) {
	for i, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("array shape %s has non-concrete dimension %d at axis %d", ShapeString(shape), d, i)
		}
	}
	if n := dataLen(data); n >= 0 && n != numElements(shape) {
		return nil, fmt.Errorf("array data has %d elements, but shape %s requires %d", n, ShapeString(shape), numElements(shape))
	}
	return &Array{shape: append([]int(nil), shape...), dtype: dtype, data: data}, nil
}

// dataLen returns the length of a supported flat backing slice, or -1 for
// unrecognized backing types (left unchecked).
func dataLen(data any) int {
	switch d := data.(type) {
	case []bool:
		return len(d)
	case []int32:
		return len(d)
	case []int64:
		return len(d)
	case []float32:
		return len(d)
	case []float64:
		return len(d)
	default:
		return -1
	}
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// DType returns the array's element type.
func (a *Array) DType() DType { return a.dtype }

// Data returns the flat backing slice.
func (a *Array) Data() any { return a.data }

func (a *Array) String() string {
	return fmt.Sprintf("Array(shape=%s, dtype=%s)", ShapeString(a.shape), a.dtype)
}

// Tensor is a framework-managed handle: a named value with a runtime shape
// and dtype. The tracer never touches its storage, only its metadata.
type Tensor struct {
	name  string
	shape []int
	dtype DType
}

// NewTensor creates a tensor handle with the given runtime metadata.
func NewTensor(name string, dtype DType, shape []int) *Tensor {
	return &Tensor{name: name, shape: append([]int(nil), shape...), dtype: dtype}
}

// Name returns the tensor's runtime name.
func (t *Tensor) Name() string { return t.name }

// Shape returns a copy of the tensor's runtime shape.
func (t *Tensor) Shape() []int { return append([]int(nil), t.shape...) }

// DType returns the tensor's element type.
func (t *Tensor) DType() DType { return t.dtype }

func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(name=%q, shape=%s, dtype=%s)", t.name, ShapeString(t.shape), t.dtype)
}

package funcspec

import "github.com/vk/tracegraph/internal/layer"

// Parameters returns the trainable parameters of the traced object as an
// ordered name-to-tensor mapping. With includeSublayers set, parameters
// created in sub-layers are collected too. A nil object yields an empty
// mapping; an object without the layer capability is an error.
func Parameters(obj any, includeSublayers bool) (*layer.Dict, error) {
	if obj == nil {
		return layer.NewDict(), nil
	}
	l, ok := obj.(layer.Layer)
	if !ok {
		return nil, &UnsupportedLayerTypeError{Value: obj}
	}
	return l.Parameters(includeSublayers), nil
}

// Buffers returns the persistent buffers of the traced object as an ordered
// name-to-tensor mapping, with the same semantics as Parameters.
func Buffers(obj any, includeSublayers bool) (*layer.Dict, error) {
	if obj == nil {
		return layer.NewDict(), nil
	}
	l, ok := obj.(layer.Layer)
	if !ok {
		return nil, &UnsupportedLayerTypeError{Value: obj}
	}
	return l.Buffers(includeSublayers), nil
}

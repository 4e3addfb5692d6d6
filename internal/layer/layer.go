// Package layer defines the model-side collaborator the tracer collects
// trainable parameters and persistent buffers from.
//
// The tracer does not own the model abstraction; it only requires the
// capability expressed by the Layer interface. Base is a ready-made
// implementation for composing layers out of named parameters, buffers and
// sub-layers, and is what the tests and CLI demos use.
package layer

import (
	"github.com/vk/tracegraph/internal/tensor"
)

// Layer is the capability contract for model-like objects: ordered access
// to trainable parameters and persistent buffers, with optional recursion
// into sub-layers.
type Layer interface {
	// Parameters returns the layer's trainable parameters keyed by tensor
	// name. With recursive set, parameters of sub-layers are included in
	// depth-first registration order.
	Parameters(recursive bool) *Dict
	// Buffers returns the layer's persistent buffers keyed by tensor name,
	// with the same recursion semantics as Parameters.
	Buffers(recursive bool) *Dict
}

// Base is a composable Layer implementation.
type Base struct {
	params    *Dict
	buffers   *Dict
	sublayers []Layer
}

// NewBase creates an empty layer.
func NewBase() *Base {
	return &Base{params: NewDict(), buffers: NewDict()}
}

// AddParameter registers a trainable parameter under its tensor name.
func (b *Base) AddParameter(p *tensor.Tensor) {
	b.params.Set(p.Name(), p)
}

// AddBuffer registers a persistent buffer under its tensor name.
func (b *Base) AddBuffer(buf *tensor.Tensor) {
	b.buffers.Set(buf.Name(), buf)
}

// AddSublayer registers a child layer for recursive collection.
func (b *Base) AddSublayer(l Layer) {
	b.sublayers = append(b.sublayers, l)
}

// Parameters implements Layer.
func (b *Base) Parameters(recursive bool) *Dict {
	if !recursive {
		return b.params.clone()
	}
	out := b.params.clone()
	for _, sub := range b.sublayers {
		out.merge(sub.Parameters(true))
	}
	return out
}

// Buffers implements Layer.
func (b *Base) Buffers(recursive bool) *Dict {
	if !recursive {
		return b.buffers.clone()
	}
	out := b.buffers.clone()
	for _, sub := range b.sublayers {
		out.merge(sub.Buffers(true))
	}
	return out
}

package layer

import "github.com/vk/tracegraph/internal/tensor"

// Dict is an insertion-ordered name-to-tensor mapping. Setting an existing
// name replaces the value but keeps the original position.
type Dict struct {
	keys []string
	vals map[string]*tensor.Tensor
}

// NewDict creates an empty ordered mapping.
func NewDict() *Dict {
	return &Dict{vals: make(map[string]*tensor.Tensor)}
}

// Set inserts or replaces the tensor stored under name.
func (d *Dict) Set(name string, t *tensor.Tensor) {
	if _, ok := d.vals[name]; !ok {
		d.keys = append(d.keys, name)
	}
	d.vals[name] = t
}

// Get returns the tensor stored under name.
func (d *Dict) Get(name string) (*tensor.Tensor, bool) {
	t, ok := d.vals[name]
	return t, ok
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// Names returns the keys in insertion order.
func (d *Dict) Names() []string { return append([]string(nil), d.keys...) }

// Values returns the tensors in insertion order.
func (d *Dict) Values() []*tensor.Tensor {
	out := make([]*tensor.Tensor, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.vals[k])
	}
	return out
}

func (d *Dict) clone() *Dict {
	out := NewDict()
	for _, k := range d.keys {
		out.Set(k, d.vals[k])
	}
	return out
}

func (d *Dict) merge(other *Dict) {
	for _, k := range other.keys {
		d.Set(k, other.vals[k])
	}
}

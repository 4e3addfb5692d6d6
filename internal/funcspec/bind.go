package funcspec

import (
	"reflect"

	"github.com/vk/tracegraph/internal/nest"
)

// Bind reconciles a variadic call against the declared signature, moving
// keyword values and defaults into their positional slots.
//
// Given `foo(x, a=1, b=2)` called as `foo(23)`, Bind returns args
// `(23, 1, 2)` and empty residual kwargs; called as `foo(23, b=9)` it
// returns `(23, 1, 9)`. Keyword arguments that do not match a declared name
// pass through untouched in the residual map. The caller's kwargs map is
// never mutated; consumed entries are dropped from the returned copy only.
func (d *Descriptor) Bind(args []any, kwargs map[string]any) (nest.Tuple, map[string]any, error) {
	if len(args) > len(d.argNames) {
		excess := args[len(d.argNames)]
		if isTypeValue(excess) {
			return nil, nil, &AmbiguousDecoratorError{
				Function: d.name,
				ArgNames: d.ArgNames(),
				Args:     args,
				Excess:   excess,
			}
		}
		return nil, nil, &TooManyArgumentsError{
			Function: d.name,
			ArgNames: d.ArgNames(),
			Args:     args,
		}
	}

	residual := make(map[string]any, len(kwargs))
	for k, v := range kwargs {
		residual[k] = v
	}

	bound := make(nest.Tuple, 0, len(d.argNames))
	bound = append(bound, args...)

	for i := len(args); i < len(d.argNames); i++ {
		name := d.argNames[i]
		if v, ok := residual[name]; ok {
			bound = append(bound, v)
			delete(residual, name)
			continue
		}
		v, ok := d.defaults[name]
		if !ok {
			return nil, nil, &MissingArgumentError{
				Function: d.name,
				ArgName:  name,
				Args:     args,
				Kwargs:   kwargs,
			}
		}
		bound = append(bound, v)
	}

	return bound, residual, nil
}

// isTypeValue reports whether v is a type misrouted as an ordinary
// argument, the tell-tale of stacked decorator layers passing the receiver
// through.
func isTypeValue(v any) bool {
	_, ok := v.(reflect.Type)
	return ok
}

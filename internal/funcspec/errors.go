package funcspec

import "fmt"

// The errors below surface verbatim to end users tracing their own
// functions, so every message names the offending value and where it was
// found. Callers branch on kinds with errors.As.

// TooManyArgumentsError reports a call that supplied more positional
// arguments than the function declares.
type TooManyArgumentsError struct {
	Function string
	ArgNames []string
	Args     []any
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("the traced function %q requires %d arguments: %v, but received %d with %v",
		e.Function, len(e.ArgNames), e.ArgNames, len(e.Args), e.Args)
}

// AmbiguousDecoratorError is the sharper diagnosis of a too-many-arguments
// failure: the first excess positional argument is itself a type value,
// which usually means a second decorator layer misrouted the receiver into
// the plain argument list.
type AmbiguousDecoratorError struct {
	Function string
	ArgNames []string
	Args     []any
	Excess   any
}

func (e *AmbiguousDecoratorError) Error() string {
	return fmt.Sprintf("the traced function %q requires %d arguments: %v, but received %d with %v; "+
		"the first excess argument %v is a type, so the function is likely wrapped by more than one decorator, which is not supported",
		e.Function, len(e.ArgNames), e.ArgNames, len(e.Args), e.Args, e.Excess)
}

// MissingArgumentError reports a declared parameter with neither a supplied
// value nor a default.
type MissingArgumentError struct {
	Function string
	ArgName  string
	Args     []any
	Kwargs   map[string]any
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s() requires argument %q, but it was not found in positional args %v or keyword args %v",
		e.Function, e.ArgName, e.Args, e.Kwargs)
}

// UnsupportedKeywordsError reports keyword arguments supplied alongside an
// explicit input spec. Explicit specs bind by structural position, which
// keyword binding would make ambiguous.
type UnsupportedKeywordsError struct {
	Function string
	Kwargs   map[string]any
}

func (e *UnsupportedKeywordsError) Error() string {
	return fmt.Sprintf("%s got unexpected keyword arguments %v: the function cannot be traced with keyword arguments when input_spec is specified",
		e.Function, e.Kwargs)
}

// InsufficientArgumentsError reports fewer bound arguments than declared
// spec entries.
type InsufficientArgumentsError struct {
	Function string
	NumArgs  int
	NumSpec  int
}

func (e *InsufficientArgumentsError) Error() string {
	return fmt.Sprintf("%s requires len(arguments) >= len(input_spec), but received len(args): %d < len(input_spec): %d",
		e.Function, e.NumArgs, e.NumSpec)
}

// InvalidSpecContainerError reports a declared spec whose top level is not a
// sequence.
type InvalidSpecContainerError struct {
	Value any
}

func (e *InvalidSpecContainerError) Error() string {
	return fmt.Sprintf("input_spec must be a list or tuple, but received %T (%v)", e.Value, e.Value)
}

// InvalidSpecLeafError reports a spec leaf that is not an input descriptor.
type InvalidSpecLeafError struct {
	Value any
}

func (e *InvalidSpecLeafError) Error() string {
	return fmt.Sprintf("every leaf of input_spec must be an InputSpec or a list/dict/tuple of them, but received %T (%v)", e.Value, e.Value)
}

// StructureTypeMismatchError reports an actual-argument container whose type
// differs from the spec container at the same position.
type StructureTypeMismatchError struct {
	Spec   any
	Inputs any
}

func (e *StructureTypeMismatchError) Error() string {
	return fmt.Sprintf("structure mismatch: input should be %T to match the spec %v, but received %T (%v)",
		e.Spec, e.Spec, e.Inputs, e.Inputs)
}

// StructureLengthMismatchError reports an actual-argument container shorter
// than the spec at some nesting level. Lengths are the top-level ones so the
// user can relate them to the call site.
type StructureLengthMismatchError struct {
	InputsLen int
	SpecLen   int
}

func (e *StructureLengthMismatchError) Error() string {
	return fmt.Sprintf("requires len(inputs) >= len(input_spec), but received len(inputs): %d < len(input_spec): %d",
		e.InputsLen, e.SpecLen)
}

// UnsupportedLayerTypeError reports a parameter or buffer accessor called on
// an object without the layer capability.
type UnsupportedLayerTypeError struct {
	Value any
}

func (e *UnsupportedLayerTypeError) Error() string {
	return fmt.Sprintf("the traced object must implement layer.Layer to expose parameters and buffers, but received %T (%v)", e.Value, e.Value)
}

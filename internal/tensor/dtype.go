package tensor

import "fmt"

// DType identifies the element type of an array or tensor.
type DType int

const (
	Bool DType = iota
	Int32
	Int64
	Float32
	Float64
)

// String returns the canonical lower-case name of the dtype, as it appears
// in manifests and log output.
func (d DType) String() string {
	switch d {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("DType(%d)", int(d))
	}
}

// ParseDType converts a canonical dtype name into its DType value.
func ParseDType(name string) (DType, error) {
	switch name {
	case "bool":
		return Bool, nil
	case "int32":
		return Int32, nil
	case "int64":
		return Int64, nil
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	default:
		return 0, fmt.Errorf("unknown dtype %q: must be one of 'bool', 'int32', 'int64', 'float32' or 'float64'", name)
	}
}

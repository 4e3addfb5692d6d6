package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Manifest represents the top-level structure of a function manifest file,
// containing all traced-function declarations.
type Manifest struct {
	Functions []*Function `hcl:"function,block"`
	Body      hcl.Body    `hcl:",remain"`
}

// Function declares one traced function: its ordered arguments, optional
// defaults, and the optional input spec describing which arguments become
// graph inputs.
type Function struct {
	Name        string       `hcl:"name,label"`
	Description string       `hcl:"description,optional"`
	Args        []*ArgDef    `hcl:"arg,block"`
	Inputs      []*InputSpec `hcl:"input,block"`
}

// ArgDef declares a single argument of a traced function. Arguments bind in
// declaration order; a default makes the argument optional at call time.
type ArgDef struct {
	Name    string     `hcl:"name,label"`
	Default *cty.Value `hcl:"default,optional"`
}

// InputSpec declares the shape and dtype of one graph input. Input blocks
// are positional: the i-th block must describe the i-th declared argument.
type InputSpec struct {
	ArgName     string `hcl:"arg,label"`
	Shape       []int  `hcl:"shape"`
	DType       string `hcl:"dtype"`
	Description string `hcl:"description,optional"`
}

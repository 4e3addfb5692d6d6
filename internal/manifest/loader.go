// Package manifest loads traced-function declarations from HCL manifest
// files and turns them into function descriptors.
//
// A manifest declares, per function, the ordered argument list with optional
// defaults and an optional positional input spec:
//
//	function "forward" {
//	  arg "x" {}
//	  arg "training" { default = false }
//
//	  input "x" {
//	    shape = [-1, 3, 224, 224]
//	    dtype = "float32"
//	  }
//	}
//
// Input blocks are positional: the i-th input block must describe the i-th
// declared argument, because specs bind to call arguments by position, not
// by name. The label is required anyway so a misordered manifest fails
// loudly at load time instead of binding wrong values at trace time.
package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/tracegraph/internal/ctxlog"
	"github.com/vk/tracegraph/internal/fsutil"
	"github.com/vk/tracegraph/internal/funcspec"
	"github.com/vk/tracegraph/internal/schema"
)

// Loader parses and validates function manifests.
type Loader struct{}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds every .hcl file at or under path, decodes the function blocks
// and returns one descriptor per declared function, in file order.
func (l *Loader) Load(ctx context.Context, path string) ([]*funcspec.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading function manifests.", "path", path)

	files, err := fsutil.FindByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find manifest files in %s: %w", path, err)
	}
	if len(files) == 0 {
		logger.Warn("No .hcl manifest files found in path.", "path", path)
		return nil, nil
	}

	parser := hclparse.NewParser()
	var functions []*schema.Function
	for _, file := range files {
		m, err := decodeManifestFile(ctx, parser, file)
		if err != nil {
			return nil, err
		}
		functions = append(functions, m.Functions...)
	}

	if err := validateFunctions(functions); err != nil {
		return nil, err
	}

	descriptors := make([]*funcspec.Descriptor, 0, len(functions))
	for _, fn := range functions {
		d, err := translateFunction(fn)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}

	logger.Debug("Function manifests loaded.", "files", len(files), "functions", len(descriptors))
	return descriptors, nil
}

// decodeManifestFile parses and decodes a single HCL manifest file.
func decodeManifestFile(ctx context.Context, parser *hclparse.Parser, filePath string) (*schema.Manifest, error) {
	ctxlog.FromContext(ctx).Debug("Decoding manifest file.", "path", filePath)

	file, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest file %s: %s", filePath, diags.Error())
	}

	var m schema.Manifest
	diags = gohcl.DecodeBody(file.Body, nil, &m)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest file %s: %s", filePath, diags.Error())
	}
	return &m, nil
}

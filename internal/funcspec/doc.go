// Package funcspec normalizes how a traced function is invoked.
//
// # Why funcspec exists
//
// The tracing layer accepts calls the same way a dynamic call site would:
// some positional arguments, some keyword arguments, some declared defaults,
// and optionally an explicit input spec describing which arguments become
// graph inputs. Before a single graph node can be built, all of that has to
// be reconciled into one canonical form: a fully positional argument tuple
// whose tensor-like leaves are replaced by abstract input descriptors.
// funcspec owns that reconciliation end to end:
//
//   - Descriptor wraps one traced function: its declared argument names,
//     defaults and (optionally) a verified input spec. Built once per
//     function, reused for every call.
//   - Descriptor.Bind merges declared defaults with call-time arguments
//     into a full positional tuple plus residual keywords.
//   - Descriptor.Resolve walks the bound arguments and substitutes each
//     tensor-like leaf with an input descriptor, either by merging the
//     declared spec positionally (ConvertToInputSpec) or by deriving
//     descriptors from the values themselves.
//   - Descriptor.BuildInputs turns the resolved tree into placeholder nodes
//     inside a target graph, preserving the nested shape.
//
// Matching between arguments and specs is strictly positional for sequences
// and key-based for mappings, never by type or shape inference. A caller who
// reorders arguments will silently bind the wrong values; that hazard is
// documented rather than auto-corrected.
package funcspec

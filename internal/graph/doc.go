// Package graph provides the static computation graph container that the
// tracer inserts placeholder nodes into.
//
// # Responsibilities
//
// A Graph is the symbolic representation built ahead of execution. During
// tracing it only ever grows: the placeholder builder inserts one feed node
// per input descriptor into the graph's global block, and constants pass
// through untouched. Execution, differentiation and kernels live elsewhere;
// this package stops at structure.
//
// # Construction mode
//
// Graph-building primitives target whichever graph is active in the current
// context. The active graph travels in a context.Context value (WithActive /
// Active), never in package-level state, so nested switches restore the
// previous target on every exit path for free and concurrent tracers with
// separate contexts cannot contaminate each other's graphs.
//
// # Thread-safety
//
// A Graph guards its node table with a mutex, so inserting into one graph
// from multiple goroutines is safe. The usual pattern is still one graph per
// tracing session.
package graph

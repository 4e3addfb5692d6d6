// Package testutil provides shared helpers for tracer tests: a manifest
// parsing harness and log capture for asserting on advisories.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/tracegraph/internal/ctxlog"
	"github.com/vk/tracegraph/internal/funcspec"
	"github.com/vk/tracegraph/internal/manifest"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// ContextWithLogCapture returns a context carrying a debug-level text logger
// and the buffer its output lands in.
func ContextWithLogCapture(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()
	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}

// LoadManifestString writes manifestHCL to a temp file and runs the loader
// over it, failing the test on any load error.
func LoadManifestString(t *testing.T, manifestHCL string) []*funcspec.Descriptor {
	t.Helper()
	descriptors, err := TryLoadManifestString(t, manifestHCL)
	require.NoError(t, err)
	return descriptors
}

// TryLoadManifestString is LoadManifestString without the error assertion,
// for tests that expect loading to fail.
func TryLoadManifestString(t *testing.T, manifestHCL string) ([]*funcspec.Descriptor, error) {
	t.Helper()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(manifestHCL), 0600))

	ctx, _ := ContextWithLogCapture(t)
	return manifest.NewLoader().Load(ctx, path)
}

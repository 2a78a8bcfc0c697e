// Package observability provides hooks for metrics, tracing, and logging.
//
// The render pipeline reports what it does through small hook interfaces
// instead of depending on a metrics or tracing backend. Nothing is recorded
// unless a program registers its own hooks at startup.
//
// # Architecture
//
//   - Hook interfaces per event category ([PipelineHooks], [OutputHooks])
//   - No-op default implementations
//   - A global registry set once by main
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetOutputHooks(&myOutputHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLoadStart(ctx, source)
//	// ... load the diagram ...
//	observability.Pipeline().OnLoadComplete(ctx, source, counts, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// Counts describes the size of a loaded diagram.
type Counts struct {
	Branches int
	Commits  int
	Links    int
}

// PipelineHooks receives events from the render pipeline.
type PipelineHooks interface {
	// Load events. source is the input path, or "example" for built-in data.
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, counts Counts, duration time.Duration, err error)

	// Compose events
	OnComposeStart(ctx context.Context, vizType string)
	OnComposeComplete(ctx context.Context, vizType string, width, height int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Output Hooks
// =============================================================================

// OutputHooks receives events when rendered files are written.
type OutputHooks interface {
	// OnWrite records a file write of size bytes.
	OnWrite(ctx context.Context, path string, size int, duration time.Duration, err error)

	// OnOpen records an attempt to show a file in the system viewer.
	OnOpen(ctx context.Context, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                                  {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, Counts, time.Duration, error) {}
func (NoopPipelineHooks) OnComposeStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnComposeComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopOutputHooks is a no-op implementation of OutputHooks.
type NoopOutputHooks struct{}

func (NoopOutputHooks) OnWrite(context.Context, string, int, time.Duration, error) {}
func (NoopOutputHooks) OnOpen(context.Context, string, error)                      {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	outputHooks   OutputHooks   = NoopOutputHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetOutputHooks registers custom output hooks.
func SetOutputHooks(h OutputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outputHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Output returns the registered output hooks.
func Output() OutputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	outputHooks = NoopOutputHooks{}
}

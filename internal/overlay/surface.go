package overlay

import (
	"github.com/tgrenier/jellysub/internal/style"
)

// Surface is the mount point the overlay renders into. Implementations own
// two nested visual nodes: an outer positioning surface toggled by
// Show/Hide, and an inner text node driven by SetText. The overlay is the
// only writer for the lifetime of the instance.
type Surface interface {
	// Show makes the outer surface visible. Text stays hidden until a cue
	// is rendered.
	Show()
	// Hide conceals the outer surface.
	Hide()
	// SetText replaces the rendered text. An empty string clears the text
	// node and hides it.
	SetText(text string)
	// ApplyStyle re-applies every visual property. Must be idempotent.
	ApplyStyle(st style.Resolved)
	// Release frees the surface. No other method may be called afterwards.
	Release()
}

// Package overlay drives the on-screen subtitle surface from an external
// playback clock. All failure modes degrade to "no subtitles shown";
// nothing in here may interrupt ongoing playback.
package overlay

import (
	"sync"
	"time"

	"github.com/tgrenier/jellysub/internal/cue"
	"github.com/tgrenier/jellysub/internal/logging"
	"github.com/tgrenier/jellysub/internal/style"
)

// Overlay owns the visual surface and resolves the active cue against the
// playback position. Cues are installed per track load and discarded on
// disable; the overlay never assumes they are sorted or non-overlapping.
type Overlay struct {
	mu        sync.Mutex
	surface   Surface
	logger    *logging.Logger
	enabled   bool
	destroyed bool
	cues      []cue.Cue
	active    int // index into cues, -1 when no cue is on screen
	settings  style.Config
}

func New(surface Surface, logger *logging.Logger) *Overlay {
	if logger == nil {
		logger = logging.NewNop()
	}
	o := &Overlay{
		surface: surface,
		logger:  logger,
		active:  -1,
	}
	o.surface.Hide()
	return o
}

// Enable replaces the cue list, resets the active cue and shows the
// surface under the current appearance. Invoked by the track loader on
// every successful load.
func (o *Overlay) Enable(cues []cue.Cue) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.destroyed {
		return
	}

	o.cues = cues
	o.active = -1
	o.enabled = true
	o.surface.SetText("")
	o.surface.ApplyStyle(style.Resolve(o.settings))
	o.surface.Show()
	o.logger.Debugw("subtitle overlay enabled", "cues", len(cues))
}

// Disable discards the cues, clears any rendered text and hides the
// surface. The overlay can be re-enabled with a new cue list.
func (o *Overlay) Disable() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.destroyed {
		return
	}
	o.clearLocked()
}

// Destroy disables the overlay and releases the surface. The instance
// cannot be reused afterwards.
func (o *Overlay) Destroy() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.destroyed {
		return
	}
	o.clearLocked()
	o.surface.Release()
	o.destroyed = true
}

func (o *Overlay) clearLocked() {
	o.enabled = false
	o.cues = nil
	o.active = -1
	o.surface.SetText("")
	o.surface.Hide()
}

// Update resolves the cue for the given playback position and mutates the
// surface only when the match changed. Called once per clock tick on a hot
// path: when the active cue still contains the position it returns without
// touching anything, and a repeated position is always a no-op.
func (o *Overlay) Update(position time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.enabled || len(o.cues) == 0 {
		return
	}

	if o.active >= 0 && o.cues[o.active].Contains(position) {
		return
	}

	// first matching cue in file order wins when intervals overlap
	match := -1
	for i := range o.cues {
		if o.cues[i].Contains(position) {
			match = i
			break
		}
	}

	if match == o.active {
		return
	}
	o.active = match
	if match < 0 {
		o.surface.SetText("")
		return
	}
	o.surface.SetText(o.cues[match].Text)
}

// ApplyStyle merges the partial config into the stored settings and
// re-applies the full resolved style unconditionally. Idempotent; an
// active cue is re-rendered immediately rather than on the next tick.
func (o *Overlay) ApplyStyle(cfg style.Config) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.destroyed {
		return
	}

	o.settings = o.settings.Merge(cfg)
	o.surface.ApplyStyle(style.Resolve(o.settings))
	if o.enabled && o.active >= 0 {
		o.surface.SetText(o.cues[o.active].Text)
	}
}

// Enabled reports whether a cue list is installed and the surface shown.
func (o *Overlay) Enabled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.enabled
}

// ActiveCue returns the cue currently on screen, if any.
func (o *Overlay) ActiveCue() (cue.Cue, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.enabled || o.active < 0 {
		return cue.Cue{}, false
	}
	return o.cues[o.active], true
}

// Settings returns the merged appearance settings as last applied.
func (o *Overlay) Settings() style.Config {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.settings
}

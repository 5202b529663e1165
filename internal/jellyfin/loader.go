package jellyfin

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/tgrenier/jellysub/internal/cue"
	"github.com/tgrenier/jellysub/internal/logging"
	"github.com/tgrenier/jellysub/internal/overlay"
)

// Track identifies one subtitle stream on the server.
type Track struct {
	ItemID        string
	MediaSourceID string
	Index         int
	Codec         string
}

// FormatForCodec maps a track's declared codec to the request format.
// Only a literal srt codec is requested as-is; the server transcodes
// everything else to vtt.
func FormatForCodec(codec string) cue.Format {
	if strings.TrimSpace(codec) == "srt" {
		return cue.FormatSRT
	}
	return cue.FormatVTT
}

// Loader orchestrates track loading: fetch, extract, install. Loads run on
// their own goroutine and carry a monotonically increasing token; a newer
// load supersedes older in-flight ones, so a slow stale response can never
// overwrite a newer track.
type Loader struct {
	client  *Client
	overlay *overlay.Overlay
	logger  *logging.Logger
	token   atomic.Uint64
}

func NewLoader(client *Client, ov *overlay.Overlay, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Loader{client: client, overlay: ov, logger: logger}
}

// Load fetches and extracts one track synchronously without touching the
// overlay.
func (l *Loader) Load(ctx context.Context, track Track) ([]cue.Cue, cue.Format, error) {
	format := FormatForCodec(track.Codec)
	text, err := l.client.FetchSubtitleText(ctx, track.ItemID, track.MediaSourceID, track.Index, format)
	if err != nil {
		return nil, format, err
	}
	return cue.Extract(text, format), format, nil
}

// LoadTrack starts an asynchronous load. On success the cues are installed
// into the overlay; on failure the overlay is left untouched, the error is
// logged and no retry is attempted.
func (l *Loader) LoadTrack(ctx context.Context, track Track) {
	token := l.token.Add(1)
	go func() {
		cues, _, err := l.Load(ctx, track)
		if err != nil {
			l.logger.Errorw("subtitle track load failed",
				"item", track.ItemID,
				"track", track.Index,
				"error", err,
			)
			return
		}
		l.install(token, cues)
	}()
}

// install applies a completed load unless a newer one was issued since.
func (l *Loader) install(token uint64, cues []cue.Cue) {
	if l.token.Load() != token {
		l.logger.Debugw("discarding stale subtitle response", "token", token)
		return
	}
	l.overlay.Enable(cues)
	l.logger.Infow("subtitle track loaded", "cues", len(cues))
}

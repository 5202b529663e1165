package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tgrenier/jellysub/internal/cue"
	"github.com/tgrenier/jellysub/internal/jellyfin"
	"github.com/tgrenier/jellysub/internal/overlay"
	"github.com/tgrenier/jellysub/internal/prefs"
	"github.com/tgrenier/jellysub/internal/term"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play a subtitle track against a wall clock in the terminal",
	Long: `Render a subtitle track in the terminal, synchronized to a wall
clock starting at zero. The overlay honors the appearance preferences from
--prefs and stops on Ctrl-C or when --for elapses.

Examples:
  jellysub preview --file movie.srt
  jellysub preview --file movie.srt --prefs prefs.yaml --start 5m
  jellysub preview --server http://nas:8096 --api-key KEY --item ITEM --media-source MS --track 3`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().String("file", "", "Local subtitle file instead of a server track")
	previewCmd.Flags().String("server", "", "Media server base address")
	previewCmd.Flags().String("api-key", "", "API access token")
	previewCmd.Flags().String("item", "", "Item identifier")
	previewCmd.Flags().String("media-source", "", "Media source identifier")
	previewCmd.Flags().Int("track", 0, "Subtitle track index")
	previewCmd.Flags().String("codec", "", "Declared track codec")
	previewCmd.Flags().String("prefs", "", "Preference file with subtitle appearance settings")
	previewCmd.Flags().String("size", "", "Override subtitle size (small, medium, large, extralarge)")
	previewCmd.Flags().String("color", "", "Override subtitle color (hex, e.g. #FFCC00)")
	previewCmd.Flags().String("position", "", "Override vertical position (top, middle, bottom, bottom-low, bottom-high)")
	previewCmd.Flags().String("background", "", "Override background mode (drop-shadow, background, none)")
	previewCmd.Flags().Duration("start", 0, "Playback position to start from")
	previewCmd.Flags().Duration("for", 0, "Stop after this long (0 runs until interrupted)")
	previewCmd.Flags().Int("rows", 24, "Terminal rows for the overlay surface")
	previewCmd.Flags().Int("cols", 80, "Terminal columns for the overlay surface")
}

func runPreview(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	server, _ := cmd.Flags().GetString("server")
	prefsPath, _ := cmd.Flags().GetString("prefs")
	startAt, _ := cmd.Flags().GetDuration("start")
	runFor, _ := cmd.Flags().GetDuration("for")
	rows, _ := cmd.Flags().GetInt("rows")
	cols, _ := cmd.Flags().GetInt("cols")

	if file == "" && server == "" {
		return fmt.Errorf("either --file or --server is required")
	}

	surface := term.New(os.Stdout, rows, cols)
	ov := overlay.New(surface, logger)
	defer ov.Destroy()

	store, err := prefs.Load(prefsPath)
	if err != nil {
		return err
	}

	// command-line overrides win over the preference file
	for key, name := range map[string]string{
		prefs.KeySize:       "size",
		prefs.KeyColor:      "color",
		prefs.KeyPosition:   "position",
		prefs.KeyBackground: "background",
	} {
		if v, _ := cmd.Flags().GetString(name); v != "" {
			store.Set(key, v)
		}
	}

	ov.ApplyStyle(store.Appearance())
	applied := ov.Settings()
	logger.Debugw("subtitle appearance applied",
		"size", applied.Size,
		"color", applied.Color,
		"position", applied.VerticalPosition,
		"background", applied.BackgroundMode,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if file != "" {
		cues, _, err := cue.Open(file)
		if err != nil {
			return err
		}
		ov.Enable(cues)
	} else {
		apiKey, _ := cmd.Flags().GetString("api-key")
		itemID, _ := cmd.Flags().GetString("item")
		mediaSourceID, _ := cmd.Flags().GetString("media-source")
		trackIndex, _ := cmd.Flags().GetInt("track")
		codec, _ := cmd.Flags().GetString("codec")

		client := jellyfin.NewClient(server, apiKey, logger)
		loader := jellyfin.NewLoader(client, ov, logger)
		loader.LoadTrack(ctx, jellyfin.Track{
			ItemID:        itemID,
			MediaSourceID: mediaSourceID,
			Index:         trackIndex,
			Codec:         codec,
		})
	}

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			if runFor > 0 && elapsed > runFor {
				return nil
			}
			ov.Update(startAt + elapsed)
		}
	}
}

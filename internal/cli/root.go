package cli

import (
	"github.com/spf13/cobra"

	"github.com/tgrenier/jellysub/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jellysub",
	Short: "Subtitle overlay engine for Jellyfin-compatible media servers",
	Long: `Jellysub fetches subtitle tracks from a media server, parses them
into timed cues and renders them as a playback-synchronized overlay.

It understands the SRT and WebVTT grammars and tolerates the malformed
files common in the wild.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}

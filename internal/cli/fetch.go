package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tgrenier/jellysub/internal/cue"
	"github.com/tgrenier/jellysub/internal/jellyfin"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a subtitle track from a media server",
	Long: `Fetch one subtitle track from a Jellyfin-compatible server and
print its cues, or save a normalized copy with --output.

A track with codec srt is requested as-is; every other codec is requested
as vtt and transcoded server-side.

Examples:
  jellysub fetch --server http://nas:8096 --api-key KEY --item ITEM --media-source MS --track 3
  jellysub fetch --server http://nas:8096 --api-key KEY --item ITEM --media-source MS --track 3 -o track.vtt`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("server", "", "Media server base address")
	fetchCmd.Flags().String("api-key", "", "API access token")
	fetchCmd.Flags().String("item", "", "Item identifier")
	fetchCmd.Flags().String("media-source", "", "Media source identifier")
	fetchCmd.Flags().Int("track", 0, "Subtitle track index")
	fetchCmd.Flags().String("codec", "", "Declared track codec (srt is fetched as-is, anything else as vtt)")
	_ = fetchCmd.MarkFlagRequired("server")
	_ = fetchCmd.MarkFlagRequired("item")
	_ = fetchCmd.MarkFlagRequired("media-source")
}

func runFetch(cmd *cobra.Command, args []string) error {
	server, _ := cmd.Flags().GetString("server")
	apiKey, _ := cmd.Flags().GetString("api-key")
	itemID, _ := cmd.Flags().GetString("item")
	mediaSourceID, _ := cmd.Flags().GetString("media-source")
	trackIndex, _ := cmd.Flags().GetInt("track")
	codec, _ := cmd.Flags().GetString("codec")
	outputPath, _ := cmd.Flags().GetString("output")

	client := jellyfin.NewClient(server, apiKey, logger)
	loader := jellyfin.NewLoader(client, nil, logger)

	cues, format, err := loader.Load(cmd.Context(), jellyfin.Track{
		ItemID:        itemID,
		MediaSourceID: mediaSourceID,
		Index:         trackIndex,
		Codec:         codec,
	})
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	logger.Infow("Fetched subtitle track",
		"format", format,
		"cues", len(cues),
	)

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(cue.Render(cues, format)), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Printf("Wrote %d cues to %s\n", len(cues), outputPath)
		return nil
	}

	for i, c := range cues {
		fmt.Printf("%d\t%s --> %s\n%s\n\n",
			i+1,
			cue.FormatVTTTime(c.Start),
			cue.FormatVTTTime(c.End),
			c.Text,
		)
	}
	return nil
}

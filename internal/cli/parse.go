package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tgrenier/jellysub/internal/cue"
)

var parseCmd = &cobra.Command{
	Use:   "parse [subtitle_file]",
	Short: "Parse a local subtitle file and print its cues",
	Long: `Parse a local SRT or WebVTT file into timed cues and print them.

The format is chosen by file extension. Blocks that fail to parse are
skipped; a file with no extractable cues prints an empty list.

Examples:
  jellysub parse movie.srt
  jellysub parse episode.vtt -o cleaned.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cues, format, err := cue.Open(args[0])
	if err != nil {
		return err
	}

	logger.Infow("Parsed subtitle file",
		"file", args[0],
		"format", format,
		"cues", len(cues),
	)

	outputPath, _ := cmd.Flags().GetString("output")
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

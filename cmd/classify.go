package cmd

import (
	"errors"
	"fmt"

	"github.com/kasuboski/discern/pkg/io"
	"github.com/kasuboski/discern/pkg/library"
	"github.com/kasuboski/discern/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <path>...",
	Short: "classify paths as videos",
	Long: `Classify each path as a video without indexing it.

Paths that are not videos are reported but are not an error.
Output is a table on a terminal and JSON otherwise.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().Bool("parse-name", true, "name videos from their parsed metadata (default from config)")
	classifyCmd.Flags().Bool("json", false, "always write JSON")
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logger.Get()

	cfg, err := readConfig()
	if err != nil {
		log.Error("failed to read configurations", zap.Error(err))
		return err
	}

	parseName := cfg.Library.ParseName
	if cmd.Flags().Changed("parse-name") {
		parseName, _ = cmd.Flags().GetBool("parse-name")
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	classifier := newClassifier(cfg.Library)
	fileIO := &io.MediaFileSystem{}

	var failed int
	results := make([]classified, len(args))
	for i, path := range args {
		results[i].Path = path

		movie, err := library.ClassifyPath(ctx, fileIO, classifier, path, parseName)
		switch {
		case errors.Is(err, library.ErrNotVideo):
			results[i].Error = err.Error()
		case err != nil:
			log.Debugw("failed to classify", "path", path, "error", err)
			results[i].Error = err.Error()
			failed++
		default:
			results[i].Video = &movie
		}
	}

	out := cmd.OutOrStdout()
	if asJSON || !isTerminal(out) {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		renderVideos(out, results)
	}

	if failed > 0 {
		return fmt.Errorf("failed to classify %d of %d paths", failed, len(args))
	}

	return nil
}

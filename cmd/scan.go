package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/kasuboski/discern/config"
	"github.com/kasuboski/discern/pkg/io"
	"github.com/kasuboski/discern/pkg/library"
	"github.com/kasuboski/discern/pkg/logger"
	"github.com/kasuboski/discern/pkg/manager"
	"github.com/kasuboski/discern/pkg/pagination"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errLocked = errors.New("another discern process is saving to storage")

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "scan a library for videos",
	Long: `Scan a library directory and list every video in it.

The directory defaults to library.dir from the config. With --save the results
replace what storage holds for the library.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("save", false, "index the scan into storage")
	scanCmd.Flags().Bool("json", false, "always write JSON")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logger.Get()

	cfg, err := readConfig()
	if err != nil {
		log.Error("failed to read configurations", zap.Error(err))
		return err
	}

	if len(args) > 0 {
		cfg.Library.Dir = args[0]
	}

	fileIO := &io.MediaFileSystem{}
	ok, err := fileIO.IsDir(cfg.Library.Dir)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", cfg.Library.Dir, io.ErrNotDirectory)
	}

	root, err := filepath.Abs(cfg.Library.Dir)
	if err != nil {
		return err
	}

	lib := library.New(library.FileSystem{FS: os.DirFS(root), Path: root}, fileIO, newClassifier(cfg.Library), cfg.Library.ParseName)

	save, _ := cmd.Flags().GetBool("save")
	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()

	if !save {
		movies, err := lib.Scan(ctx)
		if err != nil {
			return err
		}

		if asJSON || !isTerminal(out) {
			return writeJSON(out, movies)
		}

		results := make([]classified, len(movies))
		for i := range movies {
			results[i] = classified{Path: movies[i].Path, Video: &movies[i]}
		}
		renderVideos(out, results)
		return nil
	}

	summary, page, err := saveScan(ctx, cfg.Storage, lib, fileIO)
	if err != nil {
		return err
	}

	if asJSON || !isTerminal(out) {
		return writeJSON(out, summary)
	}

	results := make([]classified, len(page.Items))
	for i := range page.Items {
		results[i] = classified{Path: page.Items[i].Path, Video: &page.Items[i]}
	}
	renderVideos(out, results)
	renderSummary(out, summary.Found, summary.Removed, summary.Packaging)
	return nil
}

// saveScan indexes lib into storage while holding the storage lock file
func saveScan(ctx context.Context, cfg config.Storage, lib *library.MediaLibrary, fileIO *io.MediaFileSystem) (manager.IndexSummary, manager.ItemsPage, error) {
	log := logger.FromCtx(ctx)

	if err := fileIO.EnsureDir(filepath.Dir(cfg.LockFile)); err != nil {
		return manager.IndexSummary{}, manager.ItemsPage{}, err
	}

	lock := flock.New(cfg.LockFile)
	locked, err := lock.TryLock()
	if err != nil {
		return manager.IndexSummary{}, manager.ItemsPage{}, fmt.Errorf("failed to lock %s: %w", cfg.LockFile, err)
	}
	if !locked {
		return manager.IndexSummary{}, manager.ItemsPage{}, errLocked
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn("failed to release lock", zap.String("lock", cfg.LockFile), zap.Error(err))
		}
	}()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return manager.IndexSummary{}, manager.ItemsPage{}, err
	}
	defer store.Close()

	m := manager.New(lib, store)
	summary, err := m.IndexLibrary(ctx)
	if err != nil {
		return summary, manager.ItemsPage{}, err
	}

	page, err := m.ListItems(ctx, pagination.Params{}, "")
	return summary, page, err
}

package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/kasuboski/discern/pkg/io"
	"github.com/kasuboski/discern/pkg/library"
	"github.com/kasuboski/discern/pkg/logger"
	"github.com/kasuboski/discern/pkg/manager"
	"github.com/kasuboski/discern/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the classification server",
	Long:  `start the classification server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := readConfig()
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logger.WithCtx(ctx, log)

		store, err := openStorage(ctx, cfg.Storage)
		if err != nil {
			log.Fatal("failed to open storage", zap.Error(err))
		}
		defer store.Close()

		root, err := filepath.Abs(cfg.Library.Dir)
		if err != nil {
			log.Fatal("failed to resolve library dir", zap.Error(err))
		}

		lib := library.New(library.FileSystem{FS: os.DirFS(root), Path: root}, &io.MediaFileSystem{}, newClassifier(cfg.Library), cfg.Library.ParseName)
		m := manager.New(lib, store)

		scheduler := manager.NewScheduler(m, cfg.Library.IndexInterval)
		go func() {
			if err := scheduler.Run(ctx); err != nil {
				log.Error("scheduler stopped", zap.Error(err))
			}
		}()

		srv := server.New(log, m, cfg.Library.ParseName)
		if err := srv.Serve(ctx, cfg.Server.Port); err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

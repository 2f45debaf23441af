package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/kasuboski/discern/config"
	"github.com/kasuboski/discern/pkg/io"
	"github.com/kasuboski/discern/pkg/naming"
	"github.com/kasuboski/discern/pkg/storage/sqlite"
	"github.com/kasuboski/discern/pkg/video"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "discern",
	Short: "discern classifies the videos in a media library",
	Long: `discern classifies the videos in a media library.

A folder holding a VIDEO_TS or BDMV structure is a single DVD or Blu-ray video,
disc images are Iso videos, and stub files stand in for discs kept offline.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("DISCERN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("library.dir", ".")
	viper.SetDefault("library.parseName", true)
	viper.SetDefault("library.videoExtensions", naming.DefaultOptions().VideoExtensions)
	viper.SetDefault("library.stubExtensions", naming.DefaultOptions().StubExtensions)
	viper.SetDefault("library.indexInterval", 0)

	viper.SetDefault("storage.filePath", "discern.sqlite")
	viper.SetDefault("storage.lockFile", "discern.lock")

	viper.SetDefault("server.port", 8080)
}

func readConfig() (config.Config, error) {
	return config.New(viper.GetViper())
}

func newClassifier(cfg config.Library) video.Classifier {
	p := naming.NewParser(cfg.NamingOptions())
	return video.NewClassifier(p, p)
}

// openStorage opens the sqlite database and brings its schema up to date
func openStorage(ctx context.Context, cfg config.Storage) (*sqlite.SQLite, error) {
	fileIO := &io.MediaFileSystem{}
	if err := fileIO.EnsureDir(filepath.Dir(cfg.FilePath)); err != nil {
		return nil, err
	}

	store, err := sqlite.New(ctx, cfg.FilePath)
	if err != nil {
		return nil, err
	}

	if err := store.RunMigrations(ctx); err != nil {
		store.Close()
		return nil, err
	}

	return store, nil
}

package config

import (
	"time"

	"github.com/kasuboski/discern/pkg/naming"
	"github.com/spf13/viper"
)

type Config struct {
	Library Library `json:"library" yaml:"library" mapstructure:"library"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Library configures where videos live and how their names are read
type Library struct {
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
	// ParseName names videos from their parsed metadata instead of their file or directory name
	ParseName       bool     `json:"parseName" yaml:"parseName" mapstructure:"parseName"`
	VideoExtensions []string `json:"videoExtensions" yaml:"videoExtensions" mapstructure:"videoExtensions"`
	StubExtensions  []string `json:"stubExtensions" yaml:"stubExtensions" mapstructure:"stubExtensions"`
	// IndexInterval is how often serve indexes the library. Zero disables scheduled indexing.
	IndexInterval time.Duration `json:"indexInterval" yaml:"indexInterval" mapstructure:"indexInterval"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
	LockFile string `json:"lockFile" yaml:"lockFile" mapstructure:"lockFile"`
}

// NamingOptions returns the parser options for the library, falling back to the defaults for anything unset
func (l Library) NamingOptions() naming.Options {
	opts := naming.DefaultOptions()
	if len(l.VideoExtensions) > 0 {
		opts.VideoExtensions = l.VideoExtensions
	}
	if len(l.StubExtensions) > 0 {
		opts.StubExtensions = l.StubExtensions
	}

	return opts
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

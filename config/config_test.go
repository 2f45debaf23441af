package config

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kasuboski/discern/config/mocks"
	"github.com/kasuboski/discern/pkg/naming"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("fail to unmarshal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("")
		cu.EXPECT().Unmarshal(gomock.Any()).Times(1).Return(wantErr)
		_, err := New(cu)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Library: Library{
				Dir:             "/media/movies",
				ParseName:       true,
				VideoExtensions: []string{".mkv", ".iso"},
				IndexInterval:   6 * time.Hour,
			},
			Storage: Storage{
				FilePath: "/var/lib/discern/discern.sqlite",
			},
			Server: Server{
				Port: 9090,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("library.dir", "/movies")
		cu.SetDefault("server.port", 8080)
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Library: Library{
				Dir: "/movies",
			},
			Server: Server{
				Port: 8080,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})
}

func TestLibrary_NamingOptions(t *testing.T) {
	assert.Equal(t, naming.DefaultOptions(), Library{}.NamingOptions())

	opts := Library{VideoExtensions: []string{"mkv"}, StubExtensions: []string{".stub"}}.NamingOptions()
	assert.Equal(t, []string{"mkv"}, opts.VideoExtensions)
	assert.Equal(t, []string{".stub"}, opts.StubExtensions)
	assert.Equal(t, naming.DefaultOptions().StubTypes, opts.StubTypes)
}

// Package globals holds the state shared by all commands of one process.
// It is created once by the root command and passed down explicitly.
package globals

import (
	"os"
	"path/filepath"

	"github.com/minepkg/mcprofile/internals/cmdlog"
	"github.com/minepkg/mcprofile/internals/credentials"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/minepkg/mcprofile/internals/ownhttp"
	"github.com/spf13/viper"
)

// EnvToken overrides the stored credential for a single run
const EnvToken = "MCPROFILE_TOKEN"

// App is the process wide state
type App struct {
	Settings  *viper.Viper
	GlobalDir string
	Store     *credentials.Store
	Client    *profile.Client
	Logger    *cmdlog.Logger
	// StoreErr is set if the stored credential could not be loaded
	StoreErr error
}

// New builds the App from settings. A broken credential store does not fail
// New, it is reported in StoreErr and the slot is empty.
func New(settings *viper.Viper, logger *cmdlog.Logger) (*App, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	globalDir := filepath.Join(configDir, "mcprofile")

	store, storeErr := credentials.New(globalDir)

	client := profile.New(
		ownhttp.New(settings.GetInt("api.ratelimit")),
		settings.GetString("api.baseurl"),
	)
	client.Log = logger

	return &App{
		Settings:  settings,
		GlobalDir: globalDir,
		Store:     store,
		Client:    client,
		Logger:    logger,
		StoreErr:  storeErr,
	}, nil
}

// Credential returns the raw credential to use. The environment wins over
// the stored slot. fromEnv reports where it came from.
func (a *App) Credential() (raw string, fromEnv bool) {
	if token := os.Getenv(EnvToken); token != "" {
		return token, true
	}
	return a.Store.Token(), false
}

// NonInteractive reports whether prompts must be skipped
func (a *App) NonInteractive() bool {
	return a.Settings.GetBool("noninteractive")
}

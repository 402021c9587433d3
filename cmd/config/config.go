package config

import (
	"os"
	"path/filepath"

	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configKindString = iota
	configKindBool
	configKindInt
)

const (
	KeyBaseURL        = "api.baseurl"
	KeyRateLimit      = "api.ratelimit"
	KeyNonInteractive = "noninteractive"
	KeyVerbose        = "verboselogging"
)

type configEntry struct {
	kind int
	help string
	def  interface{}
}

var config = map[string]configEntry{
	KeyBaseURL:        {configKindString, "Base url of the Minecraft services API", profile.DefaultBaseURL},
	KeyRateLimit:      {configKindInt, "Maximum requests per second (0 disables the limit)", 5},
	KeyNonInteractive: {configKindBool, "Never prompt, fail instead", false},
	KeyVerbose:        {configKindBool, "Print requests and responses", false},
}

var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}

// SetDefaults registers the default value of every config key
func SetDefaults(v *viper.Viper) {
	for key, entry := range config {
		v.SetDefault(key, entry.def)
	}
}

// File returns the path of the global config file
func File() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "mcprofile", "config.toml"), nil
}

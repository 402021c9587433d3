package config

import (
	"testing"

	"github.com/minepkg/mcprofile/internals/commands"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	v, err := parseValue(KeyNonInteractive, "yes")
	assert.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = parseValue(KeyRateLimit, "10")
	assert.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = parseValue(KeyBaseURL, "http://localhost/")
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost/", v)

	_, err = parseValue(KeyRateLimit, "ten")
	assert.Error(t, err)

	_, err = parseValue(KeyRateLimit, "-1")
	assert.Error(t, err)

	_, err = parseValue(KeyVerbose, "maybe")
	assert.Error(t, err)
}

func TestParseValueUnknownKey(t *testing.T) {
	_, err := parseValue("usesystemjava", "true")
	assert.IsType(t, &commands.CliError{}, err)
	assert.EqualError(t, err, `config key "usesystemjava" does not exist`)
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	assert.Equal(t, profile.DefaultBaseURL, v.GetString(KeyBaseURL))
	assert.Equal(t, 5, v.GetInt(KeyRateLimit))
	assert.False(t, v.GetBool(KeyNonInteractive))
}

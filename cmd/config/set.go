package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mcprofile/internals/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Sets a global config value",
		Args:  cobra.ExactArgs(2),
	}, &setRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type setRunner struct{}

func (i *setRunner) RunE(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])

	newValue, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	previousValue := viper.Get(key)
	previousStringValue := fmt.Sprintf("%v", previousValue)
	if previousValue == nil {
		previousStringValue = "(unset)"
	}
	viper.Set(key, newValue)

	fmt.Printf(
		"Changing config entry:\n  %s: %s → %v\n",
		key,
		gchalk.Strikethrough(previousStringValue),
		gchalk.Bold(fmt.Sprintf("%v", newValue)),
	)

	file := viper.ConfigFileUsed()
	if file == "" {
		if file, err = File(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return err
	}
	return viper.WriteConfigAs(file)
}

// parseValue converts value to the type of the config key
func parseValue(key string, value string) (interface{}, error) {
	entry, ok := config[key]
	if !ok {
		return nil, unknownKey(key)
	}

	switch entry.kind {
	case configKindBool:
		return parseBool(value)
	case configKindString:
		return value, nil
	case configKindInt:
		num, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid number \"%s\"", value)
		}
		if num < 0 {
			return nil, fmt.Errorf("%s can not be negative", key)
		}
		return num, nil
	default:
		return nil, fmt.Errorf("what? uncovered config values type")
	}
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value. Use \"true\" or \"false\"")
	}
}

package config

import (
	"fmt"
	"strings"

	"github.com/minepkg/mcprofile/internals/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get <key>",
		Short: "Gets a global config value",
		Args:  cobra.ExactArgs(1),
	}, &getRunner{})

	list := commands.New(&cobra.Command{
		Use:   "list",
		Short: "Lists all global config values",
		Args:  cobra.NoArgs,
	}, &listRunner{})

	SubCmd.AddCommand(cmd.Command, list.Command)
}

type getRunner struct{}

func (i *getRunner) RunE(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])

	if _, ok := config[key]; !ok {
		return unknownKey(key)
	}

	fmt.Println("Printing config entry:")
	fmt.Printf("  %s: %v\n", key, viper.Get(key))

	return nil
}

type listRunner struct{}

func (l *listRunner) RunE(cmd *cobra.Command, args []string) error {
	keys := maps.Keys(config)
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Printf("  %s: %v\n", key, viper.Get(key))
		fmt.Printf("    %s\n", config[key].help)
	}
	return nil
}

func unknownKey(key string) error {
	keys := maps.Keys(config)
	slices.Sort(keys)
	return &commands.CliError{
		Text:        fmt.Sprintf("config key \"%s\" does not exist", key),
		Suggestions: []string{"Available keys: " + strings.Join(keys, ", ")},
	}
}

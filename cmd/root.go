package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/minepkg/mcprofile/cmd/config"
	"github.com/minepkg/mcprofile/internals/cmdlog"
	"github.com/minepkg/mcprofile/internals/commands"
	"github.com/minepkg/mcprofile/internals/globals"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set by main
var Version = "dev"

// Commit is set by main
var Commit string

// requestTimeout limits one command's API calls
const requestTimeout = time.Minute * 2

type root struct {
	app *globals.App

	cfgFile       string
	disableColors bool
	verbose       bool
}

// newRootCmd returns the mcprofile command with all subcommands attached.
// If app is nil it is created from the config before the first command runs.
func newRootCmd(app *globals.App) *cobra.Command {
	r := &root{app: app}

	rootCmd := &cobra.Command{
		Version: Version,
		Use:     "mcprofile",
		Short:   "Edit your Minecraft profile from the terminal.",
		Long:    "Change the name, skin and cape of your Minecraft account using a session token.",
		Example: `
  mcprofile token set
  mcprofile profile
  mcprofile skin set https://example.com/skin.png --variant slim
  mcprofile namechange --watch`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.initConfig()
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	completionCmd := &cobra.Command{
		Use:   "completion",
		Args:  cobra.NoArgs,
		Short: "Output shell completion code for bash",
		Long: `To load completion run

. <(mcprofile completion)

You can add that line to your ~/.bashrc or ~/.profile to
persist completion in your shell.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&r.disableColors, "no-color", "", false, "disable color output")
	rootCmd.PersistentFlags().BoolVarP(&r.verbose, "verbose", "v", false, "log requests and responses")
	rootCmd.PersistentFlags().StringVar(&r.cfgFile, "config", "", "config file (default is <config dir>/mcprofile/config.toml)")

	rootCmd.AddCommand(
		completionCmd,
		config.SubCmd,
		newTokenCmd(r),
		newProfileCmd(r),
		newNameChangeCmd(r),
		newNameCmd(r),
		newSkinCmd(r),
		newCapeCmd(r),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Println(commands.Render(err))
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func (r *root) initConfig() error {
	if r.disableColors || os.Getenv("CI") != "" {
		cmdlog.DisableColors()
		commands.EmojiEnabled = false
	}

	if r.app != nil {
		// injected (tests)
		return nil
	}

	settings := viper.GetViper()
	config.SetDefaults(settings)
	settings.SetEnvPrefix("mcprofile")
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	settings.AutomaticEnv()

	if r.cfgFile != "" {
		settings.SetConfigFile(r.cfgFile)
	} else {
		file, err := config.File()
		if err != nil {
			return err
		}
		settings.SetConfigFile(file)
	}
	if err := settings.ReadInConfig(); err != nil && r.cfgFile != "" {
		return fmt.Errorf("could not read config file: %w", err)
	}

	logger := cmdlog.New()
	logger.Verbose = r.verbose || settings.GetBool(config.KeyVerbose)
	app, err := globals.New(settings, logger)
	if err != nil {
		return err
	}
	if app.StoreErr != nil {
		logger.Warn("Ignoring stored token: " + app.StoreErr.Error())
	}
	if used := settings.ConfigFileUsed(); used != "" {
		logger.Debug("Using config file: " + used)
	}
	r.app = app
	return nil
}

// credential returns the raw credential or an error telling how to set one
func (r *root) credential() (string, error) {
	raw, fromEnv := r.app.Credential()
	if fromEnv {
		r.app.Logger.Debug("Using " + globals.EnvToken + " for authentication")
	}
	if raw == "" {
		return "", &commands.CliError{
			Text: "no token set",
			Suggestions: []string{
				`Run "mcprofile token set" and paste your session token`,
				"Or set the environment variable " + globals.EnvToken,
			},
		}
	}
	return raw, nil
}

// interactive reports whether prompts and spinners may be shown on out
func (r *root) interactive(out io.Writer) bool {
	if r.app.NonInteractive() {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// run calls fn with a timeout context while a spinner shows msg
func (r *root) run(cmd *cobra.Command, msg string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	spin := r.interactive(cmd.OutOrStdout()) && !r.app.Logger.Verbose
	s := cmdlog.NewMaybeSpinner(spin, "")
	if spin {
		s.Update(msg)
	} else {
		r.app.Logger.Log(msg + " …")
	}
	s.Start()
	err := fn(ctx)
	s.Stop()
	return err
}

// onSuccess reports a successful mutation and shows the refreshed profile
func (r *root) onSuccess(cmd *cobra.Command, action string) error {
	r.app.Logger.Success(action + " success")

	raw, err := r.credential()
	if err != nil {
		return err
	}
	var p *profile.Profile
	err = r.run(cmd, "Refreshing profile", func(ctx context.Context) error {
		var err error
		p, _, err = r.app.Client.GetProfile(ctx, raw)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderProfile(p))
	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/minepkg/mcprofile/internals/commands"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/spf13/cobra"
)

func newTokenCmd(r *root) *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:     "token",
		Aliases: []string{"login"},
		Short:   "Manage the stored session token",
	}

	set := commands.New(&cobra.Command{
		Use:   "set [token]",
		Short: "Stores a session token and checks it by fetching the profile",
		Long: `Stores a session token and checks it by fetching the profile.

Everything before the token is ignored, so you can paste a whole
cookie or header value. Without an argument you are prompted for it.`,
		Args: cobra.MaximumNArgs(1),
	}, &tokenSetRunner{root: r})

	show := commands.New(&cobra.Command{
		Use:   "show",
		Short: "Prints a shortened version of the stored token",
		Args:  cobra.NoArgs,
	}, &tokenShowRunner{root: r})

	clearCmd := commands.New(&cobra.Command{
		Use:     "clear",
		Aliases: []string{"logout"},
		Short:   "Removes the stored token",
		Args:    cobra.NoArgs,
	}, &tokenClearRunner{root: r})

	tokenCmd.AddCommand(set.Command, show.Command, clearCmd.Command)
	return tokenCmd
}

type tokenSetRunner struct {
	*root
}

func (t *tokenSetRunner) RunE(cmd *cobra.Command, args []string) error {
	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		if !t.interactive(cmd.OutOrStdout()) {
			return &commands.CliError{
				Text:        "no token given",
				Suggestions: []string{"Pass the token as an argument: mcprofile token set <token>"},
			}
		}
		prompt := promptui.Prompt{
			Label:    "Paste your session token",
			Validate: basicValidation,
			Mask:     '■',
		}
		var err error
		raw, err = prompt.Run()
		if err != nil {
			return err
		}
	}
	raw = strings.TrimSpace(raw)

	if _, err := profile.ExtractToken(raw); err != nil {
		return &profile.Error{
			Action: "Set token",
			Kind:   profile.ErrInvalidCredential,
			Cause:  profile.ErrInvalidCredential.Error(),
		}
	}

	if err := t.app.Store.SetToken(raw); err != nil {
		return fmt.Errorf("could not store token: %w", err)
	}
	t.app.Logger.Success("Token stored")
	t.app.Logger.Headline("Checking token")

	return showProfile(t.root, cmd, outputText)
}

type tokenShowRunner struct {
	*root
}

func (t *tokenShowRunner) RunE(cmd *cobra.Command, args []string) error {
	raw, fromEnv := t.app.Credential()
	if raw == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No token stored")
		return nil
	}
	source := "stored"
	if fromEnv {
		source = "from environment"
	}

	token, err := profile.ExtractToken(raw)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Token (%s, not valid): %s\n", source, shorten(raw))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Token (%s): %s\n", source, shorten(token))
	return nil
}

type tokenClearRunner struct {
	*root
}

func (t *tokenClearRunner) RunE(cmd *cobra.Command, args []string) error {
	if err := t.app.Store.Clear(); err != nil {
		return err
	}
	t.app.Logger.Success("Token removed")
	return nil
}

// shorten keeps the start and the end of a token
func shorten(token string) string {
	if len(token) <= 24 {
		return strings.Repeat("*", len(token))
	}
	return token[:12] + "…" + token[len(token)-6:]
}

func basicValidation(input string) error {
	if len(strings.TrimSpace(input)) == 0 {
		return errors.New("You have to enter something …")
	}
	return nil
}

// fetchProfile gets the profile and writes the extracted token back to the
// store, unless the credential came from the environment
func fetchProfile(r *root, cmd *cobra.Command) (*profile.Profile, error) {
	raw, err := r.credential()
	if err != nil {
		return nil, err
	}

	var p *profile.Profile
	var token string
	err = r.run(cmd, "Fetching profile", func(ctx context.Context) error {
		var err error
		p, token, err = r.app.Client.GetProfile(ctx, raw)
		return err
	})
	if err != nil {
		return nil, err
	}

	if _, fromEnv := r.app.Credential(); !fromEnv && token != raw {
		if err := r.app.Store.SetToken(token); err != nil {
			r.app.Logger.Warn("Could not update stored token: " + err.Error())
		}
	}
	return p, nil
}

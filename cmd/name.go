package cmd

import (
	"context"
	"fmt"

	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/minepkg/mcprofile/internals/commands"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/spf13/cobra"
)

func newNameCmd(r *root) *cobra.Command {
	runner := &nameRunner{root: r}
	cmd := commands.New(&cobra.Command{
		Use:   "name <new-name>",
		Short: "Changes the profile name",
		Long: `Changes the profile name.

Names are 3 to 16 characters long and may contain letters, digits and
underscores. A name can only be changed once every 30 days.`,
		Args: cobra.ExactArgs(1),
	}, runner)

	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "do not ask for confirmation")
	return cmd.Command
}

type nameRunner struct {
	*root
	yes bool
}

func (n *nameRunner) RunE(cmd *cobra.Command, args []string) error {
	name := args[0]
	raw, err := n.credential()
	if err != nil {
		return err
	}
	if !profile.ValidName(name) {
		return &commands.CliError{
			Text: fmt.Sprintf("%q is not a valid name", name),
			Help: "Names are 3 to 16 characters long and may only contain letters, digits and underscores.",
		}
	}

	if !n.yes && n.interactive(cmd.OutOrStdout()) {
		n.app.Logger.Warn("You can only change your name once every 30 days.")
		input := confirmation.New(fmt.Sprintf("Change your name to %s?", name), confirmation.No)
		ok, err := input.RunPrompt()
		if !ok || err != nil {
			n.app.Logger.Info("Aborting")
			return nil
		}
	}

	err = n.run(cmd, "Changing name", func(ctx context.Context) error {
		_, err := n.app.Client.ChangeName(ctx, raw, name)
		return err
	})
	if err != nil {
		return err
	}
	return n.onSuccess(cmd, profile.ActionChangeName)
}

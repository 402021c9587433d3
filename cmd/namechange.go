package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/minepkg/mcprofile/internals/commands"
	"github.com/minepkg/mcprofile/internals/countdown"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/spf13/cobra"
)

func newNameChangeCmd(r *root) *cobra.Command {
	runner := &nameChangeRunner{root: r}
	cmd := commands.New(&cobra.Command{
		Use:   "namechange",
		Short: "Shows when the name can be changed next",
		Args:  cobra.NoArgs,
	}, runner)

	cmd.Flags().BoolVarP(&runner.watch, "watch", "w", false, "show a live countdown until the name can be changed")
	return cmd.Command
}

type nameChangeRunner struct {
	*root
	watch bool
}

func (n *nameChangeRunner) RunE(cmd *cobra.Command, args []string) error {
	raw, err := n.credential()
	if err != nil {
		return err
	}

	var status *profile.NameChangeStatus
	err = n.run(cmd, "Fetching name change status", func(ctx context.Context) error {
		var err error
		status, err = n.app.Client.GetNameChange(ctx, raw)
		return err
	})
	if err != nil {
		return err
	}

	if n.watch && n.interactive(cmd.OutOrStdout()) {
		model := countdown.New(status, "")
		model.QuitWhenEligible = true
		_, err := tea.NewProgram(model).Run()
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), describeNameChange(status, time.Now()))
	return nil
}

// describeNameChange renders the status as of now
func describeNameChange(status *profile.NameChangeStatus, now time.Time) string {
	c := status.Tick(now)

	text := fmt.Sprintf("Profile created %s", humanize.RelTime(status.CreatedAt, now, "ago", "from now"))
	if status.ChangedAt != nil {
		text += fmt.Sprintf("\nName changed %s", humanize.RelTime(*status.ChangedAt, now, "ago", "from now"))
	}
	if status.NameChangeAllowed {
		return text + "\n" + styleActive.Render("You can change your name now")
	}
	return text + fmt.Sprintf(
		"\nNext name change possible in %s (%s)",
		c.String(),
		status.NextChange().Local().Format(time.RFC1123),
	)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/minepkg/mcprofile/internals/commands"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/spf13/cobra"
)

func newCapeCmd(r *root) *cobra.Command {
	capeCmd := &cobra.Command{
		Use:   "cape",
		Short: "Change or hide the cape",
	}

	set := commands.New(&cobra.Command{
		Use:   "set [cape-id-or-alias]",
		Short: "Makes one of your capes the active one",
		Long: `Makes one of your capes the active one.

Without an argument you can pick one of the capes you own.`,
		Args: cobra.MaximumNArgs(1),
	}, &capeSetRunner{root: r})

	reset := commands.New(&cobra.Command{
		Use:     "reset",
		Aliases: []string{"hide"},
		Short:   "Hides the active cape",
		Args:    cobra.NoArgs,
	}, &capeResetRunner{root: r})

	capeCmd.AddCommand(set.Command, reset.Command)
	return capeCmd
}

type capeSetRunner struct {
	*root
}

func (c *capeSetRunner) RunE(cmd *cobra.Command, args []string) error {
	p, err := fetchProfile(c.root, cmd)
	if err != nil {
		return err
	}

	var capeID string
	switch {
	case len(args) == 1:
		capeID = args[0]
		if cape := p.FindCape(args[0]); cape != nil {
			capeID = cape.ID
		}
	case len(p.Capes) == 0:
		return &commands.CliError{Text: "this profile does not own any capes"}
	case !c.interactive(cmd.OutOrStdout()):
		return &commands.CliError{
			Text:        "no cape given",
			Suggestions: []string{"Pass the cape id or alias: mcprofile cape set <cape>"},
		}
	default:
		cape, err := selectCape(p)
		if err != nil {
			return err
		}
		capeID = cape.ID
	}

	raw, err := c.credential()
	if err != nil {
		return err
	}
	err = c.run(cmd, "Changing cape", func(ctx context.Context) error {
		_, err := c.app.Client.ChangeCape(ctx, raw, capeID)
		return err
	})
	if err != nil {
		return err
	}
	return c.onSuccess(cmd, profile.ActionChangeCape)
}

func selectCape(p *profile.Profile) (*profile.Cape, error) {
	labels := make([]string, len(p.Capes))
	for i, cape := range p.Capes {
		labels[i] = capeLabel(cape)
	}
	prompt := promptui.Select{
		Label: "Select a cape",
		Items: labels,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return &p.Capes[i], nil
}

func capeLabel(cape profile.Cape) string {
	label := fmt.Sprintf("%s (%s)", cape.Alias, cape.ID)
	if cape.State == profile.StateActive {
		label += " [active]"
	}
	return label
}

type capeResetRunner struct {
	*root
}

func (c *capeResetRunner) RunE(cmd *cobra.Command, args []string) error {
	raw, err := c.credential()
	if err != nil {
		return err
	}
	err = c.run(cmd, "Hiding cape", func(ctx context.Context) error {
		_, err := c.app.Client.ResetCape(ctx, raw)
		return err
	})
	if err != nil {
		return err
	}
	return c.onSuccess(cmd, profile.ActionResetCape)
}

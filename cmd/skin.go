package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/minepkg/mcprofile/internals/commands"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/spf13/cobra"
)

func newSkinCmd(r *root) *cobra.Command {
	skinCmd := &cobra.Command{
		Use:   "skin",
		Short: "Change or reset the skin",
	}

	setRunner := &skinSetRunner{root: r}
	set := commands.New(&cobra.Command{
		Use:   "set <file-or-url>",
		Short: "Uploads a 64x64 png as the new skin",
		Long: `Uploads a 64x64 png as the new skin.

The skin can either be a local file or a http(s) url pointing to the png.`,
		Example: `
  mcprofile skin set ./steve.png
  mcprofile skin set https://example.com/alex.png --variant slim`,
		Args: cobra.ExactArgs(1),
	}, setRunner)
	set.Flags().StringVar(&setRunner.variant, "variant", "classic", "skin model (classic or slim)")

	reset := commands.New(&cobra.Command{
		Use:   "reset",
		Short: "Resets the skin to the default one",
		Args:  cobra.NoArgs,
	}, &skinResetRunner{root: r})

	skinCmd.AddCommand(set.Command, reset.Command)
	return skinCmd
}

type skinSetRunner struct {
	*root
	variant string
}

func (s *skinSetRunner) RunE(cmd *cobra.Command, args []string) error {
	variant, err := profile.ParseVariant(s.variant)
	if err != nil {
		return &commands.CliError{
			Text:        err.Error(),
			Suggestions: []string{"Use --variant classic or --variant slim"},
		}
	}
	raw, err := s.credential()
	if err != nil {
		return err
	}

	source := args[0]
	if profile.IsURL(source) {
		err = s.run(cmd, "Downloading and uploading skin", func(ctx context.Context) error {
			_, err := s.app.Client.ChangeSkinWithURL(ctx, raw, source, variant)
			return err
		})
	} else {
		skin, readErr := os.ReadFile(source)
		if readErr != nil {
			return &commands.CliError{
				Text: fmt.Sprintf("could not read skin file %q", source),
				Err:  readErr,
			}
		}
		err = s.run(cmd, "Uploading skin", func(ctx context.Context) error {
			_, err := s.app.Client.ChangeSkin(ctx, raw, skin, variant)
			return err
		})
	}
	if err != nil {
		return err
	}
	return s.onSuccess(cmd, profile.ActionChangeSkin)
}

type skinResetRunner struct {
	*root
}

func (s *skinResetRunner) RunE(cmd *cobra.Command, args []string) error {
	raw, err := s.credential()
	if err != nil {
		return err
	}
	err = s.run(cmd, "Resetting skin", func(ctx context.Context) error {
		_, err := s.app.Client.ResetSkin(ctx, raw)
		return err
	})
	if err != nil {
		return err
	}
	return s.onSuccess(cmd, profile.ActionResetSkin)
}

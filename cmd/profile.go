package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/minepkg/mcprofile/internals/commands"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	styleName   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("211"))
	styleSubtle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleHeader = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
	styleActive = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleCell   = lipgloss.NewStyle().PaddingRight(2)
)

func newProfileCmd(r *root) *cobra.Command {
	runner := &profileRunner{root: r}
	cmd := commands.New(&cobra.Command{
		Use:     "profile",
		Aliases: []string{"info", "me"},
		Short:   "Shows the profile the token belongs to",
		Args:    cobra.NoArgs,
	}, runner)

	cmd.Flags().StringVarP(&runner.output, "output", "o", outputText, "output format (text, json or yaml)")
	return cmd.Command
}

type profileRunner struct {
	*root
	output string
}

func (p *profileRunner) RunE(cmd *cobra.Command, args []string) error {
	switch p.output {
	case outputText, outputJSON, outputYAML:
	default:
		return &commands.CliError{
			Text:        fmt.Sprintf("unknown output format %q", p.output),
			Suggestions: []string{"Use one of: text, json, yaml"},
		}
	}
	return showProfile(p.root, cmd, p.output)
}

// showProfile fetches and prints the profile in the given format
func showProfile(r *root, cmd *cobra.Command, output string) error {
	p, err := fetchProfile(r, cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch output {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(p)
	default:
		fmt.Fprintln(out, renderProfile(p))
		return nil
	}
}

// renderProfile renders the name and a table of skins and capes
func renderProfile(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString(styleName.Render(p.Name) + " " + styleSubtle.Render(p.ID) + "\n")

	b.WriteString(styleHeader.Render("Skins") + "\n")
	if len(p.Skins) == 0 {
		b.WriteString(styleSubtle.Render("  none") + "\n")
	}
	for _, skin := range p.Skins {
		b.WriteString(row(skin.State, skin.Variant, skin.ID, skin.URL))
	}

	b.WriteString(styleHeader.Render("Capes") + "\n")
	if len(p.Capes) == 0 {
		b.WriteString(styleSubtle.Render("  none") + "\n")
	}
	for _, cape := range p.Capes {
		b.WriteString(row(cape.State, cape.Alias, cape.ID, cape.URL))
	}
	return strings.TrimRight(b.String(), "\n")
}

func row(state string, label string, id string, url string) string {
	marker := "  "
	if state == profile.StateActive {
		marker = styleActive.Render("● ")
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		marker,
		styleCell.Width(10).Render(label),
		styleCell.Render(id),
		styleSubtle.Render(url),
	) + "\n"
}

package commands

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
)

// CliError is an error that might get displayed to the user
type CliError struct {
	Text        string
	Code        string
	Suggestions []string
	Help        string
	// Err is the wrapped error, if any
	Err error
}

func (e *CliError) Error() string {
	return e.Text
}

func (e *CliError) Unwrap() error {
	return e.Err
}

func (e *CliError) RichError() string {
	rendered := ErrorBox(e.Text, e.Help)
	if len(e.Suggestions) != 0 {
		suggestionText := "Suggestion:\n"
		if len(e.Suggestions) > 1 {
			suggestionText = "Suggestions:\n"
		}
		suggestionText = Emoji("📎 ") + suggestionText
		for _, s := range e.Suggestions {
			suggestionText += " ⦁ " + s + "\n"
		}
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, styleHelpBox.Render(suggestionText))
	}
	return rendered
}

// FromError turns profile client errors into a CliError with suggestions.
// Other errors are returned unchanged.
func FromError(err error) error {
	var profileErr *profile.Error
	if !errors.As(err, &profileErr) {
		return err
	}

	cliErr := &CliError{Text: profileErr.Error(), Err: err}
	switch {
	case errors.Is(err, profile.ErrInvalidCredential):
		cliErr.Code = "invalid_credential"
		cliErr.Suggestions = []string{
			`Paste your session token again with "mcprofile token set"`,
			`The token has to contain "` + profile.TokenMarker[:12] + `…"`,
		}
	case errors.Is(err, profile.ErrServer):
		cliErr.Code = "server_error"
		switch profileErr.StatusCode {
		case 401:
			cliErr.Suggestions = []string{
				`Your token probably expired. Set a fresh one with "mcprofile token set"`,
			}
		case 403:
			cliErr.Help = "The API refused this change. Names might be taken or changed too recently."
		case 429:
			cliErr.Help = "Too many requests. Wait a moment before trying again."
		}
	case errors.Is(err, profile.ErrTransport):
		cliErr.Code = "transport_error"
		cliErr.Suggestions = []string{"Check your internet connection", `Run again with "--verbose" for details`}
	case errors.Is(err, profile.ErrValidation):
		cliErr.Code = "validation_error"
		cliErr.Help = "The API responded with unexpected data."
	case errors.Is(err, profile.ErrDownload):
		cliErr.Code = "download_error"
		cliErr.Suggestions = []string{"Make sure the url points directly to a 64x64 png file"}
	case errors.Is(err, profile.ErrInvalidInput):
		cliErr.Code = "invalid_input"
	}
	return cliErr
}

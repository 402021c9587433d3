package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type Command struct {
	*cobra.Command
	runner Runner
}

type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// New wraps run so that returned errors are rendered as error boxes
// and the process exits with 1
func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.Run = func(cmd *cobra.Command, args []string) {
		err := run.RunE(cmd, args)
		if err != nil {
			fmt.Println(Render(err))
			os.Exit(1)
		}
	}

	return build
}

// Render returns the rendered error box for err
func Render(err error) string {
	err = FromError(err)
	var asCliErr *CliError
	if errors.As(err, &asCliErr) {
		return asCliErr.RichError() + "\n"
	}
	return ErrorBox(err.Error(), "")
}

package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tadaboard/internal/tui"
)

func (a *app) boardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "board",
		Aliases: []string{"ui"},
		Short:   "Open the interactive board",
		Args:    exactly(0, "board"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			// errors show in the status line; log lines would tear the screen
			if a.env.Logger != nil && !a.verbose {
				a.env.Logger.SetOutput(io.Discard)
			}
			return tui.Run(b)
		},
	}
}

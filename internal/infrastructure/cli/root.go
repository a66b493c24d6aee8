// Package cli wires the cobra command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/magikvoice/callctl/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	prompter := NewPrompter(nil, nil)
	clipboard := NewClipboard()

	root := &cobra.Command{
		Use:   "callctl",
		Short: "callctl - AI calling agent CLI",
		Long:  "callctl configures AI calling agents, places outbound phone calls, and manages local call history and recordings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAgentsCommand(container))
	root.AddCommand(newPromptCommand(container, clipboard))
	root.AddCommand(newCallCommand(container, prompter))
	root.AddCommand(newRecordingsCommand(container))
	root.AddCommand(newHistoryCommand(container, prompter))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newAuthCommand(container))
	root.AddCommand(newDoctorCommand(container))
	return root, nil
}

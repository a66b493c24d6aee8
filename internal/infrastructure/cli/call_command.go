package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/magikvoice/callctl/internal/app"
	"github.com/magikvoice/callctl/internal/application/call"
	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/ports"
)

func newCallCommand(container *app.Container, prompter ports.ConfirmationPrompter) *cobra.Command {
	var (
		phone    string
		language string
		vars     []string
		noRecord bool
		bare     bool
		yes      bool
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "call <agent-id>",
		Short: "Place an outbound call with an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agent, ok := container.Catalog.Find(args[0])
			if !ok {
				return fmt.Errorf("agent %q not found", args[0])
			}
			if err := validatePhone(phone); err != nil {
				return err
			}
			if language == "" {
				language = agent.DefaultLanguage
			}

			bindings, err := resolveBindings(agent, vars, bare)
			if err != nil {
				return err
			}
			if missing := missingRequired(agent, bindings); len(missing) > 0 {
				return fmt.Errorf("missing required variables: %s", strings.Join(missing, ", "))
			}

			if !yes && prompter.Enabled() {
				ok, err := prompter.Confirm(fmt.Sprintf("Call %s with agent %q", phone, agent.Name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			result, err := container.CallService.Place(ctx, call.PlaceRequest{
				AgentID:     agent.ID,
				Language:    language,
				PhoneNumber: phone,
				Bindings:    bindings,
				Record:      !noRecord,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Call started: %s\n", result.CallSid)
			container.Telemetry.Event("call_placed", map[string]string{
				"agentId":  agent.ID,
				"language": language,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&phone, "phone", "p", "", "Destination phone number (required)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Language code (defaults to the agent default)")
	cmd.Flags().StringArrayVar(&vars, "var", nil, "Variable binding key=value (repeatable)")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not record the call")
	cmd.Flags().BoolVar(&bare, "no-defaults", false, "Do not pre-fill variable defaults")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "Request timeout")
	_ = cmd.MarkFlagRequired("phone")

	cmd.AddCommand(newCallEndCommand(container))
	return cmd
}

func newCallEndCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "end <call-id>",
		Short: "End an active call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container.CallService.End(cmd.Context(), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "End requested for call %s\n", args[0])
			return nil
		},
	}
}

// validatePhone applies the same minimal sanity check the call form uses:
// at least 10 digits after stripping formatting.
func validatePhone(phone string) error {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 {
		return fmt.Errorf("phone number %q looks invalid, need at least 10 digits", phone)
	}
	return nil
}

func missingRequired(agent domain.AgentDefinition, bindings map[string]string) []string {
	var missing []string
	for _, variable := range agent.Variables {
		if variable.Required && bindings[variable.Key] == "" {
			missing = append(missing, variable.Key)
		}
	}
	return missing
}

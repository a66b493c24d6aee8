package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magikvoice/callctl/internal/app"
	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/infrastructure/catalog"
)

func newAgentsCommand(container *app.Container) *cobra.Command {
	agentsCmd := &cobra.Command{
		Use:   "agents",
		Short: "Browse the agent catalog",
	}
	agentsCmd.AddCommand(newAgentsListCommand(container))
	agentsCmd.AddCommand(newAgentsShowCommand(container))
	return agentsCmd
}

func newAgentsListCommand(container *app.Container) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			agents := container.Catalog.Visible()
			if all {
				agents = container.Catalog.All()
			}
			out := cmd.OutOrStdout()
			for _, agent := range agents {
				marker := ""
				if agent.IsHidden {
					marker = " (hidden)"
				}
				fmt.Fprintf(out, "%-16s %s%s\n", agent.ID, agent.Name, marker)
				fmt.Fprintf(out, "%-16s %s\n", "", agent.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include hidden agents")
	return cmd
}

func newAgentsShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <agent-id>",
		Short: "Show agent details and variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agent, ok := container.Catalog.Find(args[0])
			if !ok {
				return fmt.Errorf("agent %q not found", args[0])
			}
			renderAgent(cmd.OutOrStdout(), agent)
			return nil
		},
	}
}

func renderAgent(out io.Writer, agent domain.AgentDefinition) {
	fmt.Fprintf(out, "ID:          %s\n", agent.ID)
	fmt.Fprintf(out, "Name:        %s\n", agent.Name)
	fmt.Fprintf(out, "Description: %s\n", agent.Description)
	fmt.Fprintf(out, "Role:        %s\n", agent.Role)
	fmt.Fprintf(out, "Company:     %s\n", agent.Company)
	fmt.Fprintf(out, "Tone:        %s\n", agent.Tone)

	labels := make([]string, 0, len(agent.SupportedLanguages))
	for _, code := range agent.SupportedLanguages {
		label := catalog.LanguageLabel(code)
		if code == agent.DefaultLanguage {
			label += " (default)"
		}
		labels = append(labels, label)
	}
	fmt.Fprintf(out, "Languages:   %s\n", strings.Join(labels, ", "))

	fmt.Fprintln(out, "Variables:")
	for _, variable := range agent.Variables {
		required := ""
		if variable.Required {
			required = " required"
		}
		fmt.Fprintf(out, "  %-24s %-10s default=%q%s\n",
			variable.Key, variable.Type, variable.DefaultValue, required)
	}
}

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magikvoice/callctl/internal/app"
	"github.com/magikvoice/callctl/internal/application/prompt"
	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/ports"
)

func newPromptCommand(container *app.Container, clipboard ports.Clipboard) *cobra.Command {
	var (
		language string
		vars     []string
		copyOut  bool
		output   string
		bare     bool
	)

	cmd := &cobra.Command{
		Use:   "prompt <agent-id>",
		Short: "Preview the generated system prompt for an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agent, ok := container.Catalog.Find(args[0])
			if !ok {
				return fmt.Errorf("agent %q not found", args[0])
			}
			if language == "" {
				language = agent.DefaultLanguage
			}

			bindings, err := resolveBindings(agent, vars, bare)
			if err != nil {
				return err
			}

			text, err := container.PromptService.Generate(agent.ID, language, bindings)
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
					return fmt.Errorf("write prompt: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Prompt written to %s\n", output)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}

			if copyOut {
				if err := clipboard.Copy(text); err != nil {
					container.Logger.Warn("clipboard copy failed", map[string]interface{}{
						"error": err.Error(),
					})
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), "Prompt copied to clipboard.")
				}
			}

			container.Telemetry.Event("prompt_previewed", map[string]string{
				"agentId":  agent.ID,
				"language": language,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language code (defaults to the agent default)")
	cmd.Flags().StringArrayVar(&vars, "var", nil, "Variable binding key=value (repeatable)")
	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "Copy the prompt to the clipboard")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the prompt to a file instead of stdout")
	cmd.Flags().BoolVar(&bare, "no-defaults", false, "Do not pre-fill variable defaults")
	return cmd
}

// resolveBindings merges the agent's declared defaults with --var overrides.
// With bare set, only the overrides apply.
func resolveBindings(agent domain.AgentDefinition, vars []string, bare bool) (map[string]string, error) {
	bindings := map[string]string{}
	if !bare {
		bindings = prompt.DefaultBindings(agent)
	}
	overrides, err := parseBindings(vars)
	if err != nil {
		return nil, err
	}
	for key, value := range overrides {
		bindings[key] = value
	}
	return bindings, nil
}

func parseBindings(vars []string) (map[string]string, error) {
	bindings := make(map[string]string, len(vars))
	for _, pair := range vars {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --var %q, expected key=value", pair)
		}
		bindings[key] = value
	}
	return bindings, nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magikvoice/callctl/internal/app"
	"github.com/magikvoice/callctl/internal/domain"
)

func newConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and update CLI configuration",
	}
	configCmd.AddCommand(newConfigShowCommand(container))
	configCmd.AddCommand(newConfigSetBaseURLCommand(container))
	return configCmd
}

func newConfigShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.ConfigProvider.Load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "API base URL:   %s", cfg.ResolveBaseURL())
			if cfg.API.BaseURL == "" {
				fmt.Fprint(out, " (default)")
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Identity key:   env %s\n", cfg.Auth.APIKeyEnvVar)
			signedIn := "no"
			if cfg.Auth.RefreshToken != "" {
				signedIn = "yes"
			}
			fmt.Fprintf(out, "Signed in:      %s\n", signedIn)
			telemetry := "disabled"
			if container.Telemetry.Enabled() {
				telemetry = "enabled"
			}
			fmt.Fprintf(out, "Telemetry:      %s\n", telemetry)
			return nil
		},
	}
}

func newConfigSetBaseURLCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set-base-url <url>",
		Short: "Persist an API base URL override",
		Long:  fmt.Sprintf("Persist an API base URL override. Pass an empty string to return to the default (%s).", domain.DefaultAPIBaseURL),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := container.ConfigProvider.Load(ctx)
			if err != nil {
				return err
			}
			cfg.API.BaseURL = args[0]
			// the override applies to this process regardless of whether
			// the write sticks
			container.APIClient.BaseURL = cfg.ResolveBaseURL()
			if err := container.ConfigLoader.Save(ctx, cfg); err != nil {
				container.Logger.Warn("base URL override not persisted", map[string]interface{}{
					"error": err.Error(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API base URL set to %s\n", cfg.ResolveBaseURL())
			return nil
		},
	}
}

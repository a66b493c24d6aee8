package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magikvoice/callctl/internal/app"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run environment diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := container.DoctorService.Run(cmd.Context())
			out := cmd.OutOrStdout()
			failures := 0
			for _, check := range checks {
				status := "ok"
				if !check.OK {
					status = "FAIL"
					failures++
				}
				fmt.Fprintf(out, "%-8s [%s] %s\n", check.Name, status, check.Detail)
			}
			if failures > 0 {
				return fmt.Errorf("%d check(s) failed", failures)
			}
			return nil
		},
	}
}

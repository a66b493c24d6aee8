package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/magikvoice/callctl/internal/app"
	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/ports"
)

func newHistoryCommand(container *app.Container, prompter ports.ConfirmationPrompter) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect local call history",
	}
	historyCmd.AddCommand(newHistoryListCommand(container))
	historyCmd.AddCommand(newHistoryDeleteCommand(container, prompter))
	historyCmd.AddCommand(newHistoryClearCommand(container, prompter))
	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var (
		agentID  string
		language string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calls, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := container.HistoryStore.Records()
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			entries = filterEntries(entries, agentID, language)
			renderHistory(cmd.OutOrStdout(), entries, limit)
			return nil
		},
	}

	cmd.Flags().StringVar(&agentID, "agent", "", "Only calls placed with this agent id")
	cmd.Flags().StringVar(&language, "language", "", "Only calls in this language")
	cmd.Flags().IntVar(&limit, "limit", 20, "Max entries to show (0 for all)")
	return cmd
}

func newHistoryDeleteCommand(container *app.Container, prompter ports.ConfirmationPrompter) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <call-id>",
		Short: "Delete one call from history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && prompter.Enabled() {
				ok, err := prompter.Confirm(fmt.Sprintf("Delete history entry %s", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}
			if err := container.HistoryStore.Delete(args[0]); err != nil {
				return fmt.Errorf("delete history entry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newHistoryClearCommand(container *app.Container, prompter ports.ConfirmationPrompter) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all call history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && prompter.Enabled() {
				ok, err := prompter.Confirm("Delete ALL call history")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}
			if err := container.HistoryStore.Clear(); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func filterEntries(entries []domain.CallHistoryEntry, agentID, language string) []domain.CallHistoryEntry {
	if agentID == "" && language == "" {
		return entries
	}
	filtered := make([]domain.CallHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if agentID != "" && entry.AgentID != agentID {
			continue
		}
		if language != "" && entry.Language != language {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

// renderHistory prints entries newest first. The store keeps insertion
// order, so display walks it backwards.
func renderHistory(out io.Writer, entries []domain.CallHistoryEntry, limit int) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No calls recorded yet.")
		return
	}
	shown := 0
	for i := len(entries) - 1; i >= 0; i-- {
		if limit > 0 && shown >= limit {
			break
		}
		entry := entries[i]
		recorded := ""
		if entry.Recorded {
			recorded = "  [recorded]"
		}
		fmt.Fprintf(out, "%s  %s  %s (%s)  %s  %s%s\n",
			entry.Timestamp,
			entry.CallID,
			entry.AgentName,
			entry.Language,
			entry.CustomerName,
			entry.PhoneNumber,
			recorded)
		shown++
	}
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/magikvoice/callctl/internal/app"
	"github.com/magikvoice/callctl/internal/infrastructure/api"
)

func newRecordingsCommand(container *app.Container) *cobra.Command {
	recordingsCmd := &cobra.Command{
		Use:   "recordings",
		Short: "List and download call recordings",
	}
	recordingsCmd.AddCommand(newRecordingsListCommand(container))
	recordingsCmd.AddCommand(newRecordingsDownloadCommand(container))
	return recordingsCmd
}

func newRecordingsListCommand(container *app.Container) *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "list <call-id>",
		Short: "List recordings for a call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := container.CallService.Recordings(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "No recordings for this call.")
				return nil
			}
			for i, rec := range recs {
				fmt.Fprintf(out, "%d. %s  duration=%ss  status=%s  created=%s\n",
					i+1, rec.Sid, rec.Duration, rec.Status, rec.DateCreated)
			}

			if probe {
				// verify the audio is actually downloadable, then drop it
				results := container.CallService.FetchAllAudio(cmd.Context(), recs, "mp3")
				for _, result := range results {
					if result.Err != nil {
						fmt.Fprintf(out, "   %s: download failed: %v\n", result.Recording.Sid, result.Err)
						continue
					}
					fmt.Fprintf(out, "   %s: %d bytes ready\n", result.Recording.Sid, result.Handle.Len())
					result.Handle.Release()
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Download each recording to verify availability")
	return cmd
}

func newRecordingsDownloadCommand(container *app.Container) *cobra.Command {
	var (
		format string
		out    string
		index  int
	)

	cmd := &cobra.Command{
		Use:   "download <call-id>",
		Short: "Download recordings for a call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			callID := args[0]
			if format != "mp3" && format != "wav" {
				return fmt.Errorf("unsupported format %q, use mp3 or wav", format)
			}

			recs, err := container.CallService.Recordings(cmd.Context(), callID)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				return fmt.Errorf("no recordings for call %s", callID)
			}
			if index > 0 {
				if index > len(recs) {
					return fmt.Errorf("recording index %d out of range, call has %d", index, len(recs))
				}
				recs = recs[index-1 : index]
			}

			stdout := cmd.OutOrStdout()
			var failed int
			for _, rec := range recs {
				handle, err := container.CallService.FetchAudio(cmd.Context(), rec, format)
				if err != nil {
					fmt.Fprintf(stdout, "%s: download failed: %v\n", rec.Sid, err)
					failed++
					continue
				}
				dest := filepath.Join(out, fmt.Sprintf("%s_%s.%s", callID, rec.Sid, format))
				if err := api.SaveFile(handle, dest); err != nil {
					fmt.Fprintf(stdout, "%s: save failed: %v\n", rec.Sid, err)
					failed++
					continue
				}
				fmt.Fprintf(stdout, "%s -> %s\n", rec.Sid, dest)
			}
			container.Telemetry.Event("recordings_downloaded", map[string]string{
				"callId": callID,
				"format": format,
			})
			if failed == len(recs) {
				return fmt.Errorf("all downloads failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "mp3", "Audio format: mp3 or wav")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "Destination directory")
	cmd.Flags().IntVar(&index, "index", 0, "Download only the Nth recording (1-based)")
	return cmd
}

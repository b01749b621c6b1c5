package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jvilar-bio/blastq/internal/output"
	"github.com/jvilar-bio/blastq/pkg/blast"
	"github.com/jvilar-bio/blastq/pkg/models"
)

var (
	// fetch flags
	fetchWait     bool
	fetchBasename string
	fetchSequence string
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <RID>",
	Short: "Fetch and summarize the results of a search",
	Long: `Retrieves the result document for an existing job and prints the best-hit
summary. The job must be READY; pass --wait to poll until it is. Since the
query file is not at hand here, --basename and --sequence fill the fields
normally taken from it.`,
	Example: `  blastq fetch 8AZKJ2Y014
  blastq fetch --wait --output json 8AZKJ2Y014
  blastq fetch --basename sample --sequence ACGTACGT 8AZKJ2Y014`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolVar(&fetchWait, "wait", false, "poll until the job is ready before fetching")
	fetchCmd.Flags().StringVar(&fetchBasename, "basename", "", "basename recorded in the summary")
	fetchCmd.Flags().StringVar(&fetchSequence, "sequence", "", "query sequence recorded in the summary")
}

func runFetch(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true

	rid := args[0]
	client := newClient()
	ctx := context.Background()

	if fetchWait {
		handle := models.JobHandle{RID: rid}
		if err := client.WaitReady(ctx, handle, pollConfig()); err != nil {
			return err
		}
	} else {
		status, err := client.CheckStatus(ctx, rid)
		if err != nil {
			return err
		}
		switch status {
		case models.JobStatusReady:
		case models.JobStatusWaiting:
			return fmt.Errorf("search %s is still running; pass --wait to block until it finishes", rid)
		default:
			return &blast.StatusError{RID: rid, Status: status}
		}
	}

	doc, err := client.FetchResults(ctx, rid)
	if err != nil {
		return err
	}

	summary, err := blast.Summarize(rid, doc, fetchBasename, fetchSequence)
	if err != nil {
		return err
	}

	return output.Write(os.Stdout, format, summary)
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <RID>",
	Short: "Check the status of a submitted search",
	Long: `Queries the service once for the lifecycle status of an existing job and
prints it without waiting. Useful for searches submitted earlier or from
another machine.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	rid := args[0]
	client := newClient()

	status, err := client.CheckStatus(context.Background(), rid)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]string{
			"rid":    rid,
			"status": string(status),
		})
	}

	fmt.Printf("%s\t%s\n", rid, status)
	return nil
}

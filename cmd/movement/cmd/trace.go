package cmd

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/noodlebox/movement"
)

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace <start> [delta...]",
	Short: "Show the watch after each applied delta",
	Long: `Like show, but prints a table with one row per delta so the effect of
each step on the accumulated offset is visible.

Example:
  movement trace 13:33:23 +23:44:03 -7989`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	watch := movement.New(args[0], Meridiem())

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Step", "Delta", "Offset", "Display")

	table.Append([]string{"0", "(start)", "0", watch.String()})
	for i, arg := range args[1:] {
		if err := applyDelta(&watch, arg); err != nil {
			return err
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			arg,
			strconv.FormatInt(watch.Offset, 10),
			watch.String(),
		})
	}

	table.Render()
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noodlebox/movement"
	"github.com/noodlebox/movement/internal/log"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <start> [delta...]",
	Short: "Print the end time of a watch",
	Long: `Build a watch from a start time, apply each delta in order, and print
the resulting display string.

Example:
  movement show 13:33:23 +0:23:03 +1000
  movement --format 12h show "01:33:23 PM" +23:44:03`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

// nowCmd represents the now command
var nowCmd = &cobra.Command{
	Use:   "now [delta...]",
	Short: "Print the end time of a watch started at the current time",
	Long: `Like show, but the watch starts at the current local time of day.

Example:
  movement now +8:00`,
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(nowCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	watch := movement.New(args[0], Meridiem())
	logger := log.Base()
	logger.Debug().Str("start", args[0]).Int64("seconds", watch.Start).Msg("parsed start time")

	return renderWatch(&watch, args[1:])
}

func runNow(cmd *cobra.Command, args []string) error {
	watch := movement.Now(Meridiem())
	logger := log.Base()
	logger.Debug().Int64("seconds", watch.Start).Msg("started from wall clock")

	return renderWatch(&watch, args)
}

func renderWatch(watch *movement.Watch, deltas []string) error {
	for _, arg := range deltas {
		if err := applyDelta(watch, arg); err != nil {
			return err
		}
	}

	fmt.Println(watch)
	return nil
}

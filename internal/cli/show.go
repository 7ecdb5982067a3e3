package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wander/internal/planner"
)

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the itinerary's days, blocks and unassigned pool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			printSchedule(cmd.OutOrStdout(), sess)
			return nil
		},
	}
}

func printSchedule(out io.Writer, sess *planner.EditSession) {
	working := sess.Working()

	fmt.Fprintf(out, "%s (#%d)\n", sess.Title(), sess.ItineraryID())
	for i, day := range working.Days {
		fmt.Fprintf(out, "\nDay %d — %s\n", i+1, day.Date)
		printBlock(out, planner.BlockMorning, day.Morning)
		printBlock(out, planner.BlockAfternoon, day.Afternoon)
		printBlock(out, planner.BlockEvening, day.Evening)
	}

	fmt.Fprintf(out, "\nUnassigned (%d)\n", len(working.Unassigned))
	for _, ev := range working.Unassigned {
		printEvent(out, ev)
	}
}

func printBlock(out io.Writer, name planner.Block, events []planner.Event) {
	fmt.Fprintf(out, "  %s\n", name)
	if len(events) == 0 {
		fmt.Fprintln(out, "    (empty)")
		return
	}
	for _, ev := range events {
		printEvent(out, ev)
	}
}

func printEvent(out io.Writer, ev planner.Event) {
	marker := " "
	if ev.UserCreated {
		marker = "*"
	}
	line := fmt.Sprintf("    %s #%d %s", marker, ev.ID, ev.Name)
	if ev.HardStart != "" {
		line += fmt.Sprintf(" [fixed: %s %s]", planner.DateOf(ev.HardStart), planner.BlockOf(ev.HardStart))
	}
	fmt.Fprintln(out, line)
}

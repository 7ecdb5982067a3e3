package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wander/internal/planner"
)

func parseSlot(name string) (int, error) {
	switch name {
	case "morning":
		return planner.SlotMorning, nil
	case "afternoon":
		return planner.SlotAfternoon, nil
	case "evening":
		return planner.SlotEvening, nil
	case "pool":
		return planner.PoolSlot, nil
	}
	return 0, fmt.Errorf("unknown slot %q (use morning, afternoon, evening or pool)", name)
}

func (a *App) moveCmd() *cobra.Command {
	var (
		day     int
		eventID int64
		from    string
		to      string
		discard bool
	)

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move an event between blocks of a day and the pool",
		Long: `Move applies one drag-and-drop operation and saves the result.
Cross-day moves are two invocations: move the event to the pool under
the source day, then out of the pool under the target day.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fromSlot, err := parseSlot(from)
			if err != nil {
				return err
			}
			toSlot, err := parseSlot(to)
			if err != nil {
				return err
			}

			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			if err := sess.SelectDay(day - 1); err != nil {
				return err
			}

			engine := planner.NewDragMoveEngine(planner.NewConstraintValidator(), terminalNotifier{})
			cmdMove := planner.MoveCommand{EventID: eventID, FromSlot: fromSlot}
			if err := engine.Apply(sess, cmdMove, toSlot); err != nil {
				if errors.Is(err, planner.ErrDropRejected) {
					// Already reported through the notifier.
					return nil
				}
				return err
			}

			if discard {
				sess.Cancel()
				fmt.Fprintln(cmd.OutOrStdout(), "Move applied and discarded (dry run).")
				return nil
			}

			if err := sess.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved event #%d to %s on day %d.\n", eventID, to, day)
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 1, "Day number the move happens under")
	cmd.Flags().Int64Var(&eventID, "event", 0, "Event id to move")
	cmd.Flags().StringVar(&from, "from", "pool", "Source slot: morning, afternoon, evening or pool")
	cmd.Flags().StringVar(&to, "to", "pool", "Target slot: morning, afternoon, evening or pool")
	cmd.Flags().BoolVar(&discard, "discard", false, "Apply the move locally, then cancel instead of saving")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

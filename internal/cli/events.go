package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wander/internal/planner"
)

func (a *App) eventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Create, search or delete events",
	}
	cmd.AddCommand(a.eventCreateCmd())
	cmd.AddCommand(a.eventSearchCmd())
	cmd.AddCommand(a.eventDeleteCmd())
	return cmd
}

func (a *App) eventCreateCmd() *cobra.Command {
	var fields planner.EventFields

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user event; it lands in the unassigned pool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			gateway := planner.NewUserEventGateway(a.client(), sess, terminalNotifier{}, terminalNavigator{})

			ev, err := gateway.CreateEvent(cmd.Context(), fields)
			if err != nil {
				return err
			}
			if err := sess.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created event #%d %q in the unassigned pool.\n", ev.ID, ev.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Name, "name", "", "Event name")
	cmd.Flags().StringVar(&fields.Description, "description", "", "Description")
	cmd.Flags().StringVar(&fields.Type, "type", "", "Free-text event type")
	cmd.Flags().StringVar(&fields.StreetAddress, "street", "", "Street address")
	cmd.Flags().StringVar(&fields.City, "city", "", "City")
	cmd.Flags().StringVar(&fields.Country, "country", "", "Country")
	cmd.Flags().StringVar(&fields.PostalCode, "postal", "", "Postal code")
	cmd.Flags().StringVar(&fields.HardStart, "hard-start", "", "Fixed start timestamp (ISO-8601)")
	cmd.Flags().StringVar(&fields.HardEnd, "hard-end", "", "Fixed end timestamp (ISO-8601)")
	cmd.Flags().StringVar(&fields.Timezone, "timezone", "", "Display timezone hint")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (a *App) eventSearchCmd() *cobra.Command {
	var filters planner.SearchFilters

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the event catalog; pool members are hidden",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			gateway := planner.NewUserEventGateway(a.client(), sess, terminalNotifier{}, terminalNavigator{})

			result, err := gateway.Search(cmd.Context(), filters)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Caption())
			for _, ev := range result.Events {
				printEvent(out, ev)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&filters.ID, "id", 0, "Event id")
	cmd.Flags().StringVar(&filters.Name, "name", "", "Name contains")
	cmd.Flags().StringVar(&filters.Type, "type", "", "Type contains")
	cmd.Flags().StringVar(&filters.StreetAddress, "street", "", "Street address contains")
	cmd.Flags().StringVar(&filters.City, "city", "", "City contains")
	cmd.Flags().StringVar(&filters.Country, "country", "", "Country contains")
	cmd.Flags().StringVar(&filters.PostalCode, "postal", "", "Postal code")
	cmd.Flags().StringVar(&filters.StartAfter, "start-after", "", "Hard start at or after (ISO-8601)")
	cmd.Flags().StringVar(&filters.StartBefore, "start-before", "", "Hard start at or before (ISO-8601)")
	cmd.Flags().StringVar(&filters.EndAfter, "end-after", "", "Hard end at or after (ISO-8601)")
	cmd.Flags().StringVar(&filters.EndBefore, "end-before", "", "Hard end at or before (ISO-8601)")

	return cmd
}

func (a *App) eventDeleteCmd() *cobra.Command {
	var (
		day     int
		eventID int64
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user-created event wherever it currently sits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			if err := sess.SelectDay(day - 1); err != nil {
				return err
			}
			gateway := planner.NewUserEventGateway(a.client(), sess, terminalNotifier{}, terminalNavigator{})

			if err := gateway.DeleteEvent(cmd.Context(), eventID); err != nil {
				return err
			}
			if err := sess.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted event #%d.\n", eventID)
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 1, "Active day to search besides the pool")
	cmd.Flags().Int64Var(&eventID, "event", 0, "Event id to delete")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

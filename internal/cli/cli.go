// Package cli is planctl, a terminal stand-in for the itinerary editor's
// drag-and-drop surface. Each invocation opens an edit session against
// the backend, applies the requested edits and saves, unless told to
// discard.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"wander/internal/planner"
)

// Version is set at build time
var Version = "dev"

// App holds the CLI application state.
type App struct {
	root       *cobra.Command
	configPath string
	config     *planner.ClientConfig
}

// NewApp creates the planctl command tree.
func NewApp() *App {
	a := &App{}

	a.root = &cobra.Command{
		Use:   "planctl",
		Short: "Edit a travel itinerary from the terminal",
		Long: `Planctl edits a multi-day travel itinerary: move events between the
Morning/Afternoon/Evening blocks of a day and the unassigned pool,
create or search events, and save or discard the batch of edits.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.loadConfig()
		},
	}

	a.root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath(), "Path to the planctl config file")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.eventCmd())

	return a
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.root.Execute()
}

func defaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "wander", "planctl.yaml")
}

func (a *App) loadConfig() error {
	cfg, err := planner.LoadClientConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", a.configPath, err)
	}
	a.config = cfg
	return nil
}

func (a *App) client() *planner.Client {
	timeout := time.Duration(a.config.TimeoutSeconds) * time.Second
	return planner.NewClient(a.config.BaseURL, a.config.Token, timeout)
}

// openSession loads the configured itinerary into a fresh edit session.
func (a *App) openSession(ctx context.Context) (*planner.EditSession, error) {
	if a.config.ItineraryID == 0 {
		return nil, fmt.Errorf("no itinerary selected; set itinerary_id in %s", a.configPath)
	}
	return planner.LoadEditSession(ctx, a.client(), terminalNotifier{}, terminalNavigator{}, a.config.ItineraryID)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the planctl version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "planctl", Version)
		},
	}
}

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "config:      ", a.configPath)
			fmt.Fprintln(out, "base_url:    ", a.config.BaseURL)
			fmt.Fprintln(out, "itinerary_id:", a.config.ItineraryID)
		},
	}
}

// terminalNotifier is the CLI's toast surface.
type terminalNotifier struct{}

func (terminalNotifier) Notify(message string) {
	fmt.Fprintln(os.Stderr, "!", message)
}

// terminalNavigator is invoked on 401; there is no login screen to route
// to, so it tells the user how to refresh the token.
type terminalNavigator struct{}

func (terminalNavigator) GoToLogin() {
	fmt.Fprintln(os.Stderr, "! Your session has expired. Update the token in the planctl config and retry.")
}

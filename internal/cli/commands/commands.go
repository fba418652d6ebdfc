package commands

import (
	"adsched/internal/cli"
	"adsched/internal/config"
	"adsched/internal/schedule"
	"adsched/internal/storage"
	"adsched/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Schedule *ScheduleCommand
	Stats    *StatsCommand
	View     *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scheduler := schedule.NewRotationScheduler()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(nil)
	viewer := ui.NewScheduleViewer()

	return &Commands{
		Schedule: NewScheduleCommand(cfg, scheduler, jsonStorage, formatter),
		Stats:    NewStatsCommand(cfg, scheduler, formatter),
		View:     NewViewCommand(cfg, scheduler, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}

	// Schedule command
	scheduleCmd := &cobra.Command{
		Use:     "schedule [Name=Count ...]",
		Short:   "Build and print an ad schedule",
		Long:    "Build the round-robin play order for a set of ads and print it in fixed-size lines. Ads are read from arguments, a plan file, or the built-in plan.",
		RunE:    c.Schedule.Execute,
		PreRunE: applyFlags,
	}
	scheduleCmd.Flags().StringVarP(&flags.PlanFile, "plan", "p", "", "Path to a JSON plan file (object of name to count, or list of {name, plays})")
	scheduleCmd.Flags().IntVarP(&flags.ChunkSize, "chunk", "c", 0, "Number of ads printed per line (default from ADSCHED_CHUNK_SIZE or 4)")
	scheduleCmd.Flags().BoolVarP(&flags.Save, "save", "s", false, "Export the schedule to the JSON output file")
	scheduleCmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the schedule as JSON instead of text")
	scheduleCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while scheduling")
	scheduleCmd.Flags().BoolVarP(&flags.Watch, "watch", "w", false, "Rebuild the schedule whenever the plan file changes")
	rootCmd.AddCommand(scheduleCmd)

	// Stats command
	statsCmd := &cobra.Command{
		Use:     "stats [Name=Count ...]",
		Short:   "Show how ads are spread across the schedule",
		Long:    "Build the schedule, verify every ad plays its required number of times, and print per-ad distribution statistics",
		RunE:    c.Stats.Execute,
		PreRunE: applyFlags,
	}
	statsCmd.Flags().StringVarP(&flags.PlanFile, "plan", "p", "", "Path to a JSON plan file")
	rootCmd.AddCommand(statsCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view [Name=Count ...]",
		Short:   "Browse a schedule interactively",
		Long:    "Display the schedule slot by slot in an interactive viewer",
		RunE:    c.View.Execute,
		PreRunE: applyFlags,
	}
	viewCmd.Flags().StringVarP(&flags.PlanFile, "plan", "p", "", "Path to a JSON plan file")
	viewCmd.Flags().BoolVar(&flags.Saved, "saved", false, "View the last exported schedule instead of building one")
	rootCmd.AddCommand(viewCmd)
}

package commands

import (
	"fmt"

	"adsched/internal/config"
	"adsched/internal/schedule"
	"adsched/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	config    *config.Config
	scheduler schedule.Scheduler
	formatter *ui.Formatter
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(cfg *config.Config, scheduler schedule.Scheduler, formatter *ui.Formatter) *StatsCommand {
	return &StatsCommand{
		config:    cfg,
		scheduler: scheduler,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *StatsCommand) Execute(cmd *cobra.Command, args []string) error {
	ads, source, err := loadPlan(sc.config, args)
	if err != nil {
		return err
	}

	slots, err := sc.scheduler.Schedule(ads)
	if err != nil {
		return fmt.Errorf("cannot schedule ads: %w", err)
	}

	color.White("Plan from %s\n", source)
	sc.formatter.PrintPlan(ads)
	sc.formatter.PrintStats(schedule.Analyze(ads, slots), len(slots))

	passes, err := schedule.Passes(ads)
	if err != nil {
		return err
	}
	fmt.Printf("\nRotation passes: %d\n\n", len(passes))

	if err := schedule.Verify(ads, slots); err != nil {
		color.Red("✗ %v", err)
		return err
	}
	color.Green("✓ Every ad plays exactly its required number of times")
	return nil
}

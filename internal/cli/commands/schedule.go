package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"adsched/internal/config"
	"adsched/internal/domain"
	"adsched/internal/plan"
	"adsched/internal/schedule"
	"adsched/internal/storage"
	"adsched/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ScheduleCommand handles the schedule command
type ScheduleCommand struct {
	config    *config.Config
	scheduler *schedule.RotationScheduler
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewScheduleCommand creates a new ScheduleCommand
func NewScheduleCommand(
	cfg *config.Config,
	scheduler *schedule.RotationScheduler,
	st storage.Storage,
	formatter *ui.Formatter,
) *ScheduleCommand {
	return &ScheduleCommand{
		config:    cfg,
		scheduler: scheduler,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *ScheduleCommand) Execute(cmd *cobra.Command, args []string) error {
	ads, _, err := loadPlan(sc.config, args)
	if err != nil {
		return err
	}

	watch := sc.config.Flags.Watch
	if watch && (len(args) > 0 || sc.config.GetPlanPath() == "") {
		return fmt.Errorf("--watch needs a plan file (--plan or ADSCHED_PLAN)")
	}

	if err := sc.run(ads); err != nil {
		return err
	}

	if !watch {
		return nil
	}
	return sc.watch(cmd.Context())
}

// run schedules ads once and prints or exports the result
func (sc *ScheduleCommand) run(ads []domain.Ad) error {
	if sc.config.Flags.Progress {
		sc.scheduler.SetProgress(ui.NewProgressBar(domain.TotalPlays(ads)))
	} else {
		sc.scheduler.SetProgress(nil)
	}

	slots, err := sc.scheduler.Schedule(ads)
	if err != nil {
		return fmt.Errorf("cannot schedule ads: %w", err)
	}

	chunkSize := sc.config.GetChunkSize()
	if sc.config.Flags.JSON {
		output := domain.NewScheduleOutput(ads, slots, chunkSize)
		if err := sc.formatter.PrintJSON(output); err != nil {
			return err
		}
	} else {
		sc.formatter.PrintSchedule(slots, chunkSize)
	}

	if sc.config.Flags.Save {
		if err := sc.storage.Save(ads, slots, chunkSize); err != nil {
			return fmt.Errorf("failed to save schedule: %w", err)
		}
		if !sc.config.Flags.JSON {
			fmt.Println()
			color.Green("Schedule saved to %s", sc.config.GetOutputPath())
		}
	}
	return nil
}

// watch rebuilds the schedule on every plan file change until interrupted
func (sc *ScheduleCommand) watch(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	path := sc.config.GetPlanPath()
	color.Cyan("\nWatching %s for changes (Ctrl+C to stop)", path)

	return plan.NewWatcher(path).Watch(ctx, func() {
		ads, err := plan.LoadFile(path)
		if err != nil {
			color.Red("Plan reload failed: %v", err)
			return
		}
		fmt.Println()
		color.Cyan("Plan changed, rebuilding schedule")
		if err := sc.run(ads); err != nil {
			color.Red("%v", err)
		}
	}, func(err error) {
		color.Red("Watcher error: %v", err)
	})
}

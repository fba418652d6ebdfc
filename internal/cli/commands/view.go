package commands

import (
	"fmt"

	"adsched/internal/config"
	"adsched/internal/domain"
	"adsched/internal/schedule"
	"adsched/internal/storage"
	"adsched/internal/ui"

	"github.com/spf13/cobra"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config    *config.Config
	scheduler schedule.Scheduler
	storage   storage.Storage
	viewer    ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, scheduler schedule.Scheduler, st storage.Storage, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:    cfg,
		scheduler: scheduler,
		storage:   st,
		viewer:    viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := vc.loadOutput(args)
	if err != nil {
		return err
	}
	return vc.viewer.View(output)
}

func (vc *ViewCommand) loadOutput(args []string) (*domain.ScheduleOutput, error) {
	if vc.config.Flags.Saved {
		return vc.storage.Load()
	}

	ads, _, err := loadPlan(vc.config, args)
	if err != nil {
		return nil, err
	}
	slots, err := vc.scheduler.Schedule(ads)
	if err != nil {
		return nil, fmt.Errorf("cannot schedule ads: %w", err)
	}
	return domain.NewScheduleOutput(ads, slots, vc.config.GetChunkSize()), nil
}

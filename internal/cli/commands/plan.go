package commands

import (
	"fmt"

	"adsched/internal/config"
	"adsched/internal/domain"
	"adsched/internal/plan"
)

// loadPlan picks the ads to schedule: arguments first, then the plan file,
// then the built-in plan. It returns a short description of the source.
func loadPlan(cfg *config.Config, args []string) ([]domain.Ad, string, error) {
	if len(args) > 0 {
		ads, err := plan.ParseArgs(args)
		if err != nil {
			return nil, "", err
		}
		return ads, "arguments", nil
	}

	if path := cfg.GetPlanPath(); path != "" {
		ads, err := plan.LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		return ads, fmt.Sprintf("plan file %s", path), nil
	}

	return plan.DefaultAds(), "built-in plan", nil
}

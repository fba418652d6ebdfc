package cli

import "adsched/internal/config"

// Flags holds command-line flags
type Flags struct {
	PlanFile  string
	ChunkSize int
	Save      bool
	JSON      bool
	Progress  bool
	Watch     bool
	Saved     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		PlanFile:  f.PlanFile,
		ChunkSize: f.ChunkSize,
		Save:      f.Save,
		JSON:      f.JSON,
		Progress:  f.Progress,
		Watch:     f.Watch,
		Saved:     f.Saved,
	}
}

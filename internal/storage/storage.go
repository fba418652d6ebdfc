package storage

import (
	"adsched/internal/config"
	"adsched/internal/domain"
)

// Storage exports schedules and reads the last export back (e.g. for the viewer).
type Storage interface {
	Save(ads []domain.Ad, slots []string, chunkSize int) error
	Load() (*domain.ScheduleOutput, error)
}

// JSONStorage stores schedules in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

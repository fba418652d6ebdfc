package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"adsched/internal/domain"
)

// Save writes the schedule and its plan to the configured JSON output file.
func (s *JSONStorage) Save(ads []domain.Ad, slots []string, chunkSize int) error {
	output := domain.NewScheduleOutput(ads, slots, chunkSize)

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	return nil
}

// Load reads the last exported schedule from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.ScheduleOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule file: %w", err)
	}
	var output domain.ScheduleOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	return &output, nil
}

package domain

import "time"

// ScheduleMeta contains metadata about a generated schedule
type ScheduleMeta struct {
	TotalPlays  int    `json:"total_plays"`
	DistinctAds int    `json:"distinct_ads"`
	ChunkSize   int    `json:"chunk_size"`
	Timestamp   string `json:"timestamp"`
}

// ScheduleOutput is the complete export structure for a schedule
type ScheduleOutput struct {
	Meta  ScheduleMeta `json:"meta"`
	Ads   []Ad         `json:"ads"`
	Slots []string     `json:"slots"`
}

// NewScheduleOutput wraps a schedule built from ads, stamped with the current time
func NewScheduleOutput(ads []Ad, slots []string, chunkSize int) *ScheduleOutput {
	return &ScheduleOutput{
		Meta: ScheduleMeta{
			TotalPlays:  len(slots),
			DistinctAds: len(ads),
			ChunkSize:   chunkSize,
			Timestamp:   time.Now().Format(time.RFC3339),
		},
		Ads:   ads,
		Slots: slots,
	}
}

package domain

// Ad is a schedulable unit with a required number of plays
type Ad struct {
	Name  string `json:"name"`
	Plays int    `json:"plays"`
}

// AdStats summarizes how an ad is spread across a schedule
type AdStats struct {
	Name   string `json:"name"`
	Plays  int    `json:"plays"`
	First  int    `json:"first"`   // Slot index of the first play, -1 if none
	Last   int    `json:"last"`    // Slot index of the last play, -1 if none
	MaxGap int    `json:"max_gap"` // Largest distance between two consecutive plays
}

// TotalPlays returns the sum of the required plays of all ads
func TotalPlays(ads []Ad) int {
	total := 0
	for _, ad := range ads {
		total += ad.Plays
	}
	return total
}

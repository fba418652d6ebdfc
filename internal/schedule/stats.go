package schedule

import (
	"fmt"

	"adsched/internal/domain"
)

// Analyze returns play statistics for every ad, in the ads' input order.
// Names in slots that are not in ads are ignored.
func Analyze(ads []domain.Ad, slots []string) []domain.AdStats {
	index := make(map[string]int, len(ads))
	stats := make([]domain.AdStats, len(ads))
	prev := make([]int, len(ads))
	for i, ad := range ads {
		index[ad.Name] = i
		stats[i] = domain.AdStats{Name: ad.Name, First: -1, Last: -1}
		prev[i] = -1
	}

	for pos, name := range slots {
		i, ok := index[name]
		if !ok {
			continue
		}
		st := &stats[i]
		st.Plays++
		if st.First < 0 {
			st.First = pos
		}
		if prev[i] >= 0 && pos-prev[i] > st.MaxGap {
			st.MaxGap = pos - prev[i]
		}
		st.Last = pos
		prev[i] = pos
	}
	return stats
}

// Verify checks that slots is a complete schedule for ads
func Verify(ads []domain.Ad, slots []string) error {
	if want := domain.TotalPlays(ads); len(slots) != want {
		return fmt.Errorf("expected %d slots, got %d: %w", want, len(slots), ErrLengthMismatch)
	}
	counts := make(map[string]int, len(ads))
	for _, name := range slots {
		counts[name]++
	}
	for _, ad := range ads {
		if counts[ad.Name] != ad.Plays {
			return fmt.Errorf("ad %q plays %d times, expected %d: %w", ad.Name, counts[ad.Name], ad.Plays, ErrCountMismatch)
		}
	}
	return nil
}

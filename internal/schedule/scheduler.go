package schedule

import (
	"fmt"
	"sort"

	"adsched/internal/domain"
)

// Scheduler builds a play order from a set of ads
type Scheduler interface {
	Schedule(ads []domain.Ad) ([]string, error)
}

// Progress receives the number of plays scheduled so far
type Progress interface {
	Update(done int)
	Finish()
}

// RotationScheduler interleaves ads by visiting them round-robin in
// descending order of required plays
type RotationScheduler struct {
	progress Progress
}

// NewRotationScheduler creates a new RotationScheduler
func NewRotationScheduler() *RotationScheduler {
	return &RotationScheduler{}
}

// SetProgress sets the progress reporter for the scheduler
func (s *RotationScheduler) SetProgress(progress Progress) {
	s.progress = progress
}

// Schedule validates ads and returns their play order
func (s *RotationScheduler) Schedule(ads []domain.Ad) ([]string, error) {
	if err := Validate(ads); err != nil {
		return nil, err
	}

	var onPlay func(done int)
	if s.progress != nil {
		onPlay = s.progress.Update
		defer s.progress.Finish()
	}
	return build(ads, onPlay, nil), nil
}

// Build returns the play order for ads. Every ad appears exactly Plays
// times and the result has length TotalPlays(ads). The ads slice is not
// modified.
func Build(ads []domain.Ad) ([]string, error) {
	return NewRotationScheduler().Schedule(ads)
}

// Passes returns the schedule for ads split into rotation passes. Each
// pass lists the ads that still had plays left when it ran.
func Passes(ads []domain.Ad) ([][]string, error) {
	if err := Validate(ads); err != nil {
		return nil, err
	}
	var passes [][]string
	build(ads, nil, func(pass []string) {
		passes = append(passes, pass)
	})
	return passes, nil
}

// MaxTotalPlays is the largest schedule Validate accepts
const MaxTotalPlays = 10_000_000

// Validate checks that ads can be scheduled
func Validate(ads []domain.Ad) error {
	seen := make(map[string]struct{}, len(ads))
	total := 0
	for i, ad := range ads {
		if ad.Name == "" {
			return fmt.Errorf("ad #%d: %w", i+1, ErrEmptyName)
		}
		if ad.Plays < 0 {
			return fmt.Errorf("ad %q requires %d plays: %w", ad.Name, ad.Plays, ErrNegativeCount)
		}
		if _, ok := seen[ad.Name]; ok {
			return fmt.Errorf("ad %q: %w", ad.Name, ErrDuplicateAd)
		}
		seen[ad.Name] = struct{}{}
		// Compared against the remaining headroom so the sum never overflows
		if ad.Plays > MaxTotalPlays-total {
			return fmt.Errorf("ad %q requires %d plays, plan exceeds %d: %w", ad.Name, ad.Plays, MaxTotalPlays, ErrPlanTooLarge)
		}
		total += ad.Plays
	}
	return nil
}

// build runs the rotation over already validated ads. onPlay is called
// after each appended play, onPass after each full pass over the queue.
func build(ads []domain.Ad, onPlay func(done int), onPass func(pass []string)) []string {
	remaining := make([]int, len(ads))
	order := make([]int, len(ads))
	total := 0
	for i, ad := range ads {
		remaining[i] = ad.Plays
		order[i] = i
		total += ad.Plays
	}

	// Ties keep input order
	sort.SliceStable(order, func(i, j int) bool {
		return ads[order[i]].Plays > ads[order[j]].Plays
	})

	slots := make([]string, 0, total)
	if total == 0 {
		return slots
	}

	queue := newRotation(order)
	for total > 0 {
		passStart := len(slots)
		for n := queue.len(); n > 0; n-- {
			idx := queue.front()
			if remaining[idx] > 0 {
				slots = append(slots, ads[idx].Name)
				remaining[idx]--
				total--
				if onPlay != nil {
					onPlay(len(slots))
				}
			}
			// Exhausted ads still take a rotation step
			queue.rotate()
		}
		if onPass != nil {
			onPass(slots[passStart:len(slots):len(slots)])
		}
	}
	return slots
}

package schedule

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"adsched/internal/domain"
)

func referenceAds() []domain.Ad {
	return []domain.Ad{
		{Name: "Ad1", Plays: 60},
		{Name: "Ad2", Plays: 6},
		{Name: "Ad3", Plays: 2},
		{Name: "Ad4", Plays: 3},
	}
}

func countPlays(slots []string) map[string]int {
	counts := make(map[string]int)
	for _, s := range slots {
		counts[s]++
	}
	return counts
}

// assertNoRepeatWhileOthersRemain fails if an ad plays twice in a row while
// some other ad still had plays left.
func assertNoRepeatWhileOthersRemain(t *testing.T, ads []domain.Ad, slots []string) {
	t.Helper()
	remaining := make(map[string]int, len(ads))
	for _, ad := range ads {
		remaining[ad.Name] = ad.Plays
	}
	for i, name := range slots {
		if i > 0 && slots[i-1] == name {
			for other, left := range remaining {
				if other != name && left > 0 {
					t.Fatalf("%s repeated at slot %d while %s had %d plays left", name, i, other, left)
				}
			}
		}
		remaining[name]--
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		ads      []domain.Ad
		expected []string
	}{
		{
			name:     "empty input",
			ads:      nil,
			expected: []string{},
		},
		{
			name:     "single ad single play",
			ads:      []domain.Ad{{Name: "A", Plays: 1}},
			expected: []string{"A"},
		},
		{
			name:     "single ad repeats",
			ads:      []domain.Ad{{Name: "A", Plays: 3}},
			expected: []string{"A", "A", "A"},
		},
		{
			name:     "equal counts alternate",
			ads:      []domain.Ad{{Name: "A", Plays: 2}, {Name: "B", Plays: 2}},
			expected: []string{"A", "B", "A", "B"},
		},
		{
			name:     "ties keep input order",
			ads:      []domain.Ad{{Name: "B", Plays: 2}, {Name: "A", Plays: 2}},
			expected: []string{"B", "A", "B", "A"},
		},
		{
			name:     "higher count goes first",
			ads:      []domain.Ad{{Name: "low", Plays: 1}, {Name: "high", Plays: 3}},
			expected: []string{"high", "low", "high", "high"},
		},
		{
			name:     "zero count is skipped",
			ads:      []domain.Ad{{Name: "A", Plays: 2}, {Name: "Z", Plays: 0}, {Name: "B", Plays: 1}},
			expected: []string{"A", "B", "A"},
		},
		{
			name:     "only zero counts",
			ads:      []domain.Ad{{Name: "A", Plays: 0}, {Name: "B", Plays: 0}},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Build(tt.ads)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestBuild_ReferencePlan(t *testing.T) {
	ads := referenceAds()
	result, err := Build(ads)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 71 {
		t.Fatalf("expected 71 slots, got %d", len(result))
	}

	counts := countPlays(result)
	for _, ad := range ads {
		if counts[ad.Name] != ad.Plays {
			t.Errorf("expected %s to play %d times, got %d", ad.Name, ad.Plays, counts[ad.Name])
		}
	}

	firstPass := []string{"Ad1", "Ad2", "Ad4", "Ad3"}
	if !reflect.DeepEqual(result[:4], firstPass) {
		t.Errorf("expected first pass %v, got %v", firstPass, result[:4])
	}

	head := "Ad1 Ad2 Ad4 Ad3 Ad1 Ad2 Ad4 Ad3 Ad1 Ad2 Ad4 Ad1 Ad2 Ad1 Ad2 Ad1 Ad2 Ad1"
	if got := strings.Join(result[:18], " "); got != head {
		t.Errorf("expected head %q, got %q", head, got)
	}
	for i, name := range result[17:] {
		if name != "Ad1" {
			t.Fatalf("expected only Ad1 after slot 17, got %s at %d", name, i+17)
		}
	}

	assertNoRepeatWhileOthersRemain(t, ads, result)
}

func TestBuild_Properties(t *testing.T) {
	plans := [][]domain.Ad{
		referenceAds(),
		{{Name: "A", Plays: 2}, {Name: "B", Plays: 2}},
		{{Name: "A", Plays: 5}, {Name: "B", Plays: 5}, {Name: "C", Plays: 5}},
		{{Name: "A", Plays: 1}, {Name: "B", Plays: 9}, {Name: "C", Plays: 0}, {Name: "D", Plays: 4}},
		{{Name: "x", Plays: 7}, {Name: "y", Plays: 1}},
	}

	for _, ads := range plans {
		result, err := Build(ads)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", ads, err)
		}
		if len(result) != domain.TotalPlays(ads) {
			t.Errorf("expected length %d, got %d", domain.TotalPlays(ads), len(result))
		}
		if err := Verify(ads, result); err != nil {
			t.Errorf("verify failed for %v: %v", ads, err)
		}
		assertNoRepeatWhileOthersRemain(t, ads, result)

		again, _ := Build(ads)
		if !reflect.DeepEqual(result, again) {
			t.Errorf("expected deterministic output for %v", ads)
		}
	}
}

func TestBuild_EqualCountsNeverTriple(t *testing.T) {
	result, err := Build([]domain.Ad{{Name: "A", Plays: 2}, {Name: "B", Plays: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 2; i < len(result); i++ {
		if result[i] == result[i-1] && result[i] == result[i-2] {
			t.Errorf("three consecutive %s at slot %d", result[i], i)
		}
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	ads := referenceAds()
	if _, err := Build(ads); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ads, referenceAds()) {
		t.Errorf("input was modified: %v", ads)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		ads      []domain.Ad
		expected error
	}{
		{
			name:     "valid",
			ads:      referenceAds(),
			expected: nil,
		},
		{
			name:     "negative count",
			ads:      []domain.Ad{{Name: "A", Plays: 2}, {Name: "B", Plays: -1}},
			expected: ErrNegativeCount,
		},
		{
			name:     "empty name",
			ads:      []domain.Ad{{Name: "", Plays: 1}},
			expected: ErrEmptyName,
		},
		{
			name:     "single huge count",
			ads:      []domain.Ad{{Name: "A", Plays: 1 << 62}},
			expected: ErrPlanTooLarge,
		},
		{
			name:     "sum overflows int",
			ads:      []domain.Ad{{Name: "A", Plays: math.MaxInt}, {Name: "B", Plays: 2}},
			expected: ErrPlanTooLarge,
		},
		{
			name:     "sum just above limit",
			ads:      []domain.Ad{{Name: "A", Plays: MaxTotalPlays}, {Name: "B", Plays: 1}},
			expected: ErrPlanTooLarge,
		},
		{
			name:     "sum at limit",
			ads:      []domain.Ad{{Name: "A", Plays: MaxTotalPlays - 1}, {Name: "B", Plays: 1}},
			expected: nil,
		},
		{
			name:     "duplicate name",
			ads:      []domain.Ad{{Name: "A", Plays: 1}, {Name: "A", Plays: 2}},
			expected: ErrDuplicateAd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.ads)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}

	t.Run("build rejects oversized plan without panicking", func(t *testing.T) {
		result, err := Build([]domain.Ad{{Name: "A", Plays: math.MaxInt}, {Name: "B", Plays: 2}})
		if !errors.Is(err, ErrPlanTooLarge) {
			t.Errorf("expected ErrPlanTooLarge, got %v", err)
		}
		if result != nil {
			t.Errorf("expected no schedule, got %d slots", len(result))
		}
	})

	t.Run("build rejects invalid input", func(t *testing.T) {
		result, err := Build([]domain.Ad{{Name: "A", Plays: 3}, {Name: "B", Plays: -3}})
		if !errors.Is(err, ErrNegativeCount) {
			t.Errorf("expected ErrNegativeCount, got %v", err)
		}
		if result != nil {
			t.Errorf("expected no schedule, got %v", result)
		}
	})
}

type recordingProgress struct {
	updates  []int
	finished int
}

func (p *recordingProgress) Update(done int) { p.updates = append(p.updates, done) }
func (p *recordingProgress) Finish()         { p.finished++ }

func TestRotationScheduler_Progress(t *testing.T) {
	progress := &recordingProgress{}
	s := NewRotationScheduler()
	s.SetProgress(progress)

	result, err := s.Schedule(referenceAds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(progress.updates) != len(result) {
		t.Errorf("expected %d updates, got %d", len(result), len(progress.updates))
	}
	if last := progress.updates[len(progress.updates)-1]; last != 71 {
		t.Errorf("expected last update 71, got %d", last)
	}
	if progress.finished != 1 {
		t.Errorf("expected Finish once, got %d", progress.finished)
	}
}

func TestPasses(t *testing.T) {
	passes, err := Passes(referenceAds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(passes) != 60 {
		t.Fatalf("expected 60 passes, got %d", len(passes))
	}

	expected := [][]string{
		{"Ad1", "Ad2", "Ad4", "Ad3"},
		{"Ad1", "Ad2", "Ad4", "Ad3"},
		{"Ad1", "Ad2", "Ad4"},
		{"Ad1", "Ad2"},
	}
	if !reflect.DeepEqual(passes[:4], expected) {
		t.Errorf("expected %v, got %v", expected, passes[:4])
	}
	if !reflect.DeepEqual(passes[59], []string{"Ad1"}) {
		t.Errorf("expected last pass [Ad1], got %v", passes[59])
	}

	t.Run("empty input has no passes", func(t *testing.T) {
		passes, err := Passes(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(passes) != 0 {
			t.Errorf("expected no passes, got %v", passes)
		}
	})
}

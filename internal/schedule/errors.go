package schedule

import "errors"

var (
	// ErrNegativeCount is returned when an ad requires fewer than zero plays
	ErrNegativeCount = errors.New("negative play count")
	// ErrEmptyName is returned when an ad has no identifier
	ErrEmptyName = errors.New("empty ad name")
	// ErrDuplicateAd is returned when the same ad name appears twice
	ErrDuplicateAd = errors.New("duplicate ad")
	// ErrPlanTooLarge is returned when the total plays exceed MaxTotalPlays
	ErrPlanTooLarge = errors.New("plan too large")
	// ErrLengthMismatch is returned by Verify when the schedule has the wrong length
	ErrLengthMismatch = errors.New("schedule length mismatch")
	// ErrCountMismatch is returned by Verify when an ad plays the wrong number of times
	ErrCountMismatch = errors.New("play count mismatch")
)

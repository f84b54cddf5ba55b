package service

import "github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"

// BurnClassifier decides which current statuses count as "burned".
// The burned set comes from configuration; every other label, including
// ones never seen before, is unburned.
type BurnClassifier struct {
	burned map[string]bool
}

// NewBurnClassifier builds a classifier from the configured burned labels.
func NewBurnClassifier(burnedStatuses []string) *BurnClassifier {
	set := make(map[string]bool, len(burnedStatuses))
	for _, s := range burnedStatuses {
		if s = NormalizeStatus(s); s != "" {
			set[s] = true
		}
	}
	return &BurnClassifier{burned: set}
}

// IsBurned reports whether status belongs to the burned set.
func (c *BurnClassifier) IsBurned(status string) bool {
	return c.burned[NormalizeStatus(status)]
}

// Classify folds per-current-status inquiry counts into the two buckets.
func (c *BurnClassifier) Classify(currentStatusCounts map[string]int) model.BurnUnburnStats {
	var stats model.BurnUnburnStats
	for status, n := range currentStatusCounts {
		if c.IsBurned(status) {
			stats.Burned += n
		} else {
			stats.Unburned += n
		}
	}
	return stats
}

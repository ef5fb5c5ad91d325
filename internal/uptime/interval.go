package uptime

import (
	"sort"

	"github.com/statuswatch/statuswatch/internal/models"
)

// Merge collapses an unordered collection of intervals into the minimal
// sorted set of disjoint covering intervals. Intervals that exactly touch
// (one's end equals the other's start) are merged. The input is not
// modified; empty input yields nil.
func Merge(intervals []models.Interval) []models.Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]models.Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []models.Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
		} else {
			merged = append(merged, iv)
		}
	}
	return merged
}

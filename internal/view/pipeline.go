// Package view derives the ordered, filtered task list the user sees from
// the raw task collection plus the active search, scope, filter and sort
// state. Everything here is a pure function of its inputs: no stage
// mutates the source slice, and "now" is always injected.
package view

import (
	"sort"
	"time"

	"taskdeck/internal/models"
)

// FilterState holds the multi-select filter dimensions. Empty slices mean
// the dimension is not filtered.
type FilterState struct {
	Priority []models.Priority
	Status   []Status
	Date     []Bucket
}

// Empty reports whether no filter dimension is active.
func (f FilterState) Empty() bool {
	return len(f.Priority) == 0 && len(f.Status) == 0 && len(f.Date) == 0
}

// BuildView runs the derivation pipeline: search, scope, priority, status
// and date-bucket predicates compose as an intersection, then the
// survivors are stable-sorted by the requested key and direction. The
// input slice is never modified.
func BuildView(tasks []models.Task, query string, scope Scope, filters FilterState, key SortKey, order SortOrder, now time.Time) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !MatchesSearch(t, query) {
			continue
		}
		if !MatchesScope(t, scope, now) {
			continue
		}
		if !MatchesPriority(t, filters.Priority) {
			continue
		}
		if !MatchesStatus(t, filters.Status) {
			continue
		}
		if !MatchesDateBucket(t, filters.Date, now) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j], key, order) < 0
	})
	return out
}

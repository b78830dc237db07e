package view

import (
	"strings"

	"taskdeck/internal/models"
)

type SortKey string

const (
	SortCreatedAt SortKey = "createdAt"
	SortTitle     SortKey = "title"
	SortPriority  SortKey = "priority"
	SortDueDate   SortKey = "dueDate"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Compare is a total-order comparator over tasks, returning -1, 0 or +1.
// OrderDesc is exactly the inverse of OrderAsc for every key, and equal
// keys compare as 0 so a stable sort preserves input order.
func Compare(a, b models.Task, key SortKey, order SortOrder) int {
	c := compareAsc(a, b, key)
	if order == OrderDesc {
		return -c
	}
	return c
}

func compareAsc(a, b models.Task, key SortKey) int {
	switch key {
	case SortTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case SortPriority:
		return compareInt64(int64(a.Priority.Weight()), int64(b.Priority.Weight()))
	case SortDueDate:
		return compareInt64(dueMilli(a), dueMilli(b))
	default:
		return compareInt64(a.CreatedAt.UnixMilli(), b.CreatedAt.UnixMilli())
	}
}

// dueMilli treats a missing due date as timestamp 0, which pushes dateless
// tasks to the "oldest" end of a due-date sort. Kept as-is pending product
// clarification.
func dueMilli(t models.Task) int64 {
	if t.DueDate == nil {
		return 0
	}
	return t.DueDate.UnixMilli()
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

package view

import (
	"strings"
	"time"

	"taskdeck/internal/models"
)

// Status mirrors the two completion states a filter can select.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ScopeKind discriminates the Scope variant.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeDueToday
	ScopeCompleted
	ScopeCategory
)

// Scope is the tagged replacement for the legacy sentinel category ids
// ("all", "today", "completed", or a literal category id). Only
// ScopeCategory carries a category id.
type Scope struct {
	Kind       ScopeKind
	CategoryID int64
}

func All() Scope       { return Scope{Kind: ScopeAll} }
func DueToday() Scope  { return Scope{Kind: ScopeDueToday} }
func Completed() Scope { return Scope{Kind: ScopeCompleted} }

func ByCategory(id int64) Scope {
	return Scope{Kind: ScopeCategory, CategoryID: id}
}

// MatchesSearch reports whether the query is a case-insensitive substring
// of the task title or description. An empty query matches everything.
func MatchesSearch(t models.Task, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

// MatchesScope applies the smart-folder semantics: DueToday tests the
// task's bucket, Completed tests completion, ByCategory tests exact
// category equality, All matches everything.
func MatchesScope(t models.Task, scope Scope, now time.Time) bool {
	switch scope.Kind {
	case ScopeDueToday:
		return Classify(t.DueDate, now) == BucketToday
	case ScopeCompleted:
		return t.Completed
	case ScopeCategory:
		return t.CategoryID != nil && *t.CategoryID == scope.CategoryID
	default:
		return true
	}
}

// MatchesPriority reports membership in the selected priorities. An empty
// selection means no filter is applied.
func MatchesPriority(t models.Task, selected []models.Priority) bool {
	if len(selected) == 0 {
		return true
	}
	for _, p := range selected {
		if t.Priority == p {
			return true
		}
	}
	return false
}

// MatchesStatus is a union over the selected statuses: selecting both
// pending and completed passes every task.
func MatchesStatus(t models.Task, selected []Status) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == StatusCompleted && t.Completed {
			return true
		}
		if s == StatusPending && !t.Completed {
			return true
		}
	}
	return false
}

// MatchesDateBucket reports whether the task's due-date bucket is among
// the selected buckets. A task without a due date never matches a
// non-empty selection.
func MatchesDateBucket(t models.Task, selected []Bucket, now time.Time) bool {
	if len(selected) == 0 {
		return true
	}
	if t.DueDate == nil {
		return false
	}
	b := Classify(t.DueDate, now)
	for _, s := range selected {
		if b == s {
			return true
		}
	}
	return false
}

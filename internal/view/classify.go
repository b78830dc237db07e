package view

import (
	"fmt"
	"time"
)

// Bucket is a due-date urgency classification. Every task falls into
// exactly one bucket for a given reference time.
type Bucket string

const (
	BucketNone     Bucket = "none"
	BucketOverdue  Bucket = "overdue"
	BucketToday    Bucket = "today"
	BucketTomorrow Bucket = "tomorrow"
	BucketThisWeek Bucket = "this-week"
	BucketLater    Bucket = "later"
)

// Severity ranks due dates for visual urgency. It is not a sort key.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLater
	SeverityThisWeek
	SeveritySoon
	SeverityTomorrow
	SeverityToday
	SeverityOverdue
)

// civilDay collapses a timestamp to its calendar day, normalized to UTC so
// day arithmetic is immune to DST transitions.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysFromToday returns the signed number of calendar days between now's
// day and due's day. Negative means the due day has passed.
func daysFromToday(due, now time.Time) int {
	return int(civilDay(due).Sub(civilDay(now)) / (24 * time.Hour))
}

// Classify maps a nullable due date to its bucket against calendar-day
// boundaries: overdue before today's day, this-week covering the seven
// days after tomorrow-exclusive (offsets 2 through 7), later beyond.
func Classify(due *time.Time, now time.Time) Bucket {
	if due == nil {
		return BucketNone
	}
	switch d := daysFromToday(*due, now); {
	case d < 0:
		return BucketOverdue
	case d == 0:
		return BucketToday
	case d == 1:
		return BucketTomorrow
	case d <= 7:
		return BucketThisWeek
	default:
		return BucketLater
	}
}

// DueSeverity ranks a due date for display emphasis:
// overdue > today > tomorrow > soon (within 3 days) > this week > later.
func DueSeverity(due *time.Time, now time.Time) Severity {
	if due == nil {
		return SeverityNone
	}
	switch d := daysFromToday(*due, now); {
	case d < 0:
		return SeverityOverdue
	case d == 0:
		return SeverityToday
	case d == 1:
		return SeverityTomorrow
	case d <= 3:
		return SeveritySoon
	case d <= 7:
		return SeverityThisWeek
	default:
		return SeverityLater
	}
}

// Label renders a human-readable due-date description: "Today",
// "Tomorrow", "N day(s) overdue", "In N day(s)" up to a week out, and an
// absolute date beyond that. Tasks without a due date get an empty label.
func Label(due *time.Time, now time.Time) string {
	if due == nil {
		return ""
	}
	d := daysFromToday(*due, now)
	switch {
	case d < 0:
		return fmt.Sprintf("%d %s overdue", -d, pluralDay(-d))
	case d == 0:
		return "Today"
	case d == 1:
		return "Tomorrow"
	case d <= 7:
		return fmt.Sprintf("In %d %s", d, pluralDay(d))
	default:
		return due.Format("Jan 2, 2006")
	}
}

func pluralDay(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

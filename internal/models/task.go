package models

import "time"

// Priority is the three-level task priority. Unrecognized values are
// tolerated by consuming logic (they weigh 0 in sorting) rather than
// rejected by the data layer.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Weight maps a priority to its sort weight: high=3, medium=2, low=1,
// anything else 0.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Task struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	CategoryID  *int64     `json:"categoryId" gorm:"index"`
	Priority    Priority   `json:"priority" gorm:"not null;default:'medium'"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   bool       `json:"completed" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"createdAt"`
	Order       int        `json:"order" gorm:"column:sort_order"`
}

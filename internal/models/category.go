package models

// DefaultCategoryColor is applied when a category is created without an
// explicit color.
const DefaultCategoryColor = "#8B5CF6"

type Category struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null"`
	Color string `json:"color"`
	Order int    `json:"order" gorm:"column:sort_order"`
}

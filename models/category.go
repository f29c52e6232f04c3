package models

// Category groups products. Names are unique across the store.
// Products is a back-reference only; deleting a category is out of scope.
type Category struct {
	ID       uint      `gorm:"primaryKey"`
	Name     string    `gorm:"size:50;uniqueIndex;not null"`
	Products []Product `gorm:"foreignKey:CategoryID"`
}

func (c *Category) TableName() string {
	return "categories"
}

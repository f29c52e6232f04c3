package models

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog item. CategoryID is optional; nil means
// uncategorized. Prices carry at most two fractional digits.
type Product struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"size:120;not null;index"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00"`
	InStock    bool            `gorm:"not null;default:true"`
	CategoryID *uint           `gorm:"index"`
	Category   *Category       `gorm:"foreignKey:CategoryID"`
}

func (p *Product) TableName() string {
	return "products"
}

package models

import "time"

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Origin      string  `json:"origin"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PriceUnit   string  `json:"priceUnit"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

const (
	TypeHardwood = "hardwood"
	TypeSoftwood = "softwood"

	CategoryZambian = "zambian"
	CategoryAfrican = "african"
)

// CartLineItem is a product snapshot plus quantity. Quantity is never
// stored below 1; a requested quantity under 1 removes the line instead.
type CartLineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartRecord is the durable key-value slot a serialized cart lives in,
// one row per session.
type CartRecord struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     []byte    `gorm:"not null"   json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartRecord) TableName() string {
	return "cart_records"
}

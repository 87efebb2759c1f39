package entities

import "time"

// CartItem is one product line in a shopping cart. Quantity never drops below 1.
type CartItem struct {
	ID        string  `json:"id" yaml:"id" db:"id"`
	ProductID string  `json:"product_id,omitempty" yaml:"product_id" db:"product_id"`
	Name      string  `json:"name" yaml:"name" db:"name"`
	Price     float64 `json:"price" yaml:"price" db:"price"`
	Quantity  int     `json:"quantity" yaml:"quantity" db:"quantity"`
	Seller    string  `json:"seller,omitempty" yaml:"seller" db:"seller"`
}

// CartEventType represents the kind of cart mutation
type CartEventType string

const (
	CartEventItemAdded       CartEventType = "item_added"
	CartEventQuantityChanged CartEventType = "quantity_changed"
	CartEventItemRemoved     CartEventType = "item_removed"
)

// CartEvent is published whenever a session's cart is rewritten
type CartEvent struct {
	SessionID string        `json:"session_id"`
	ItemID    string        `json:"item_id"`
	Type      CartEventType `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
}

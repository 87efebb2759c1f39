package entities

// OrderStatus represents the fulfilment stage of a pharmacy order
type OrderStatus string

const (
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusShipped, OrderStatusProcessing, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a placed pharmacy or lab order
type Order struct {
	ID          string      `json:"id" yaml:"id" db:"id"`
	OrderNumber string      `json:"order_number" yaml:"order_number" db:"order_number"`
	Date        string      `json:"date" yaml:"date" db:"date"`
	Items       int         `json:"items" yaml:"items" db:"items"`
	Total       float64     `json:"total" yaml:"total" db:"total"`
	Status      OrderStatus `json:"status" yaml:"status" db:"status"`
	TrackingID  string      `json:"tracking_id,omitempty" yaml:"tracking_id" db:"tracking_id"`
}

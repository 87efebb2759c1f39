package viewstate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// OrderTab is a tab on the orders screen
type OrderTab string

const (
	OrderTabAll        OrderTab = All
	OrderTabProcessing OrderTab = "processing"
	OrderTabDelivered  OrderTab = "delivered"
)

// orderTabStatuses folds shipped into the processing tab. This grouping
// belongs to the orders screen only.
var orderTabStatuses = map[OrderTab][]entities.OrderStatus{
	OrderTabProcessing: {entities.OrderStatusProcessing, entities.OrderStatusShipped},
	OrderTabDelivered:  {entities.OrderStatusDelivered},
}

// OrderTabs lists the tabs in display order
func OrderTabs() []OrderTab {
	return []OrderTab{OrderTabAll, OrderTabProcessing, OrderTabDelivered}
}

// InOrderTab reports whether an order with status s is listed under tab
func InOrderTab(tab OrderTab, s entities.OrderStatus) bool {
	if tab == OrderTabAll || tab == "" {
		return true
	}
	for _, member := range orderTabStatuses[tab] {
		if member == s {
			return true
		}
	}
	return false
}

// FilterOrders returns the orders shown under tab. Unknown tabs yield an
// empty list.
func FilterOrders(orders []entities.Order, tab OrderTab) []entities.Order {
	if tab == OrderTabAll || tab == "" {
		return Filter(orders, func(entities.Order) bool { return true })
	}
	return FilterByStatusSet(orders, orderTabStatuses[tab], func(o entities.Order) entities.OrderStatus { return o.Status })
}

// OrderTabCounts counts the orders each tab would show
func OrderTabCounts(orders []entities.Order) map[OrderTab]int {
	counts := make(map[OrderTab]int, len(orderTabStatuses)+1)
	for _, tab := range OrderTabs() {
		counts[tab] = len(FilterOrders(orders, tab))
	}
	return counts
}

// StatusStyle is the badge presentation of a status
type StatusStyle struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var orderStatusStyles = map[entities.OrderStatus]StatusStyle{
	entities.OrderStatusDelivered:  {Color: "#10B981", Icon: "CheckCircle"},
	entities.OrderStatusShipped:    {Color: "#3B82F6", Icon: "Truck"},
	entities.OrderStatusProcessing: {Color: "#F59E0B", Icon: "Clock"},
	entities.OrderStatusCancelled:  {Color: "#EF4444", Icon: "XCircle"},
}

// OrderStatusStyle maps a status to its badge colour, icon and label
func OrderStatusStyle(s entities.OrderStatus) StatusStyle {
	style, ok := orderStatusStyles[s]
	if !ok {
		style = StatusStyle{Color: neutralColor, Icon: "Package"}
	}
	style.Label = Capitalize(string(s))
	return style
}

// Trackable reports whether the order card offers a "Track" action
func Trackable(s entities.OrderStatus) bool {
	return s == entities.OrderStatusShipped || s == entities.OrderStatusProcessing
}

// Reorderable reports whether the order card offers a "Reorder" action
func Reorderable(s entities.OrderStatus) bool {
	return s == entities.OrderStatusDelivered
}

const neutralColor = "#6B7280"

// Capitalize upper-cases the first letter of s
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Initials joins the first letter of each space-separated word
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}

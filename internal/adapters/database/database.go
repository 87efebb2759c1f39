// Package database implements the record repositories on PostgreSQL using goqu.
package database

import (
	"errors"

	"github.com/lib/pq"
)

// Table names
const (
	cartsTable        = "carts"
	cartItemsTable    = "cart_items"
	ordersTable       = "orders"
	claimsTable       = "insurance_claims"
	appointmentsTable = "appointments"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

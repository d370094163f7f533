package archive

import "github.com/pizzadesk/pizzadesk/internal/models"

// Archive is the append-only history of confirmed orders, kept for the
// process lifetime. Only the cart engine writes to it.
type Archive struct {
	orders []models.Order
}

func New() *Archive {
	return &Archive{}
}

func (a *Archive) Append(order models.Order) {
	a.orders = append(a.orders, order)
}

// All returns a snapshot of the history in confirmation order.
func (a *Archive) All() []models.Order {
	orders := make([]models.Order, len(a.orders))
	copy(orders, a.orders)
	return orders
}

func (a *Archive) Count() int {
	return len(a.orders)
}

func (a *Archive) Clear() {
	a.orders = nil
}

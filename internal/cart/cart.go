// Package cart implements the in-progress order state machine: line items
// merge by menu item, every mutation reprices its line, and confirmation
// snapshots the cart into the archive.
package cart

import (
	"time"

	"github.com/lucsky/cuid"

	"github.com/pizzadesk/pizzadesk/internal/archive"
	"github.com/pizzadesk/pizzadesk/internal/models"
)

const (
	discountThreshold = 3
	discountRate      = 0.10
)

// LineItemDiscount is the pricing policy: three or more units of the same
// item take 10% off that line's subtotal. Lines are priced independently of
// each other.
func LineItemDiscount(quantity int, unitPrice float64) float64 {
	if quantity >= discountThreshold {
		return unitPrice * float64(quantity) * discountRate
	}
	return 0
}

// Cart holds the current line items for a single logical owner. Confirmed
// orders are handed to the injected archive.
type Cart struct {
	items   []models.LineItem
	history *archive.Archive
}

func New(history *archive.Archive) *Cart {
	return &Cart{history: history}
}

// AddToOrder merges the quantity into an existing line for the same menu
// item, or appends a new line. Quantities must be positive; that precondition
// sits with the caller. Repricing reads the item's current unit price.
func (c *Cart) AddToOrder(item *models.MenuItem, quantity int) {
	for i := range c.items {
		if c.items[i].Item.ID == item.ID {
			c.items[i].Quantity += quantity
			reprice(&c.items[i])
			return
		}
	}

	line := models.LineItem{Item: item, Quantity: quantity}
	reprice(&line)
	c.items = append(c.items, line)
}

// RemoveFromOrder deletes the line for the given menu item id. Unknown ids
// are a no-op.
func (c *Cart) RemoveFromOrder(itemID string) {
	for i := range c.items {
		if c.items[i].Item.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity outright. A quantity of zero or
// less removes the line; unknown ids are a no-op.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	for i := range c.items {
		if c.items[i].Item.ID != itemID {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
		c.items[i].Quantity = quantity
		reprice(&c.items[i])
		return
	}
}

// ConfirmOrder snapshots the current items into a new archived order and
// empties the cart, in one step. Confirming an empty cart does nothing and
// returns nil.
func (c *Cart) ConfirmOrder() *models.Order {
	if len(c.items) == 0 {
		return nil
	}

	items := make([]models.LineItem, 0, len(c.items))
	for i := range c.items {
		items = append(items, c.items[i].Clone())
	}

	order := models.Order{
		ID:            cuid.New(),
		Items:         items,
		Subtotal:      c.Subtotal(),
		TotalDiscount: c.TotalDiscount(),
		Total:         c.Total(),
		Timestamp:     time.Now(),
	}

	c.history.Append(order)
	c.items = nil
	return &order
}

// ClearOrder empties the cart without archiving anything.
func (c *Cart) ClearOrder() {
	c.items = nil
}

// Items returns a copy of the current line items in add order.
func (c *Cart) Items() []models.LineItem {
	items := make([]models.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for i := range c.items {
		sum += c.items[i].OriginalPrice
	}
	return sum
}

func (c *Cart) TotalDiscount() float64 {
	var sum float64
	for i := range c.items {
		sum += c.items[i].Discount
	}
	return sum
}

func (c *Cart) Total() float64 {
	return c.Subtotal() - c.TotalDiscount()
}

// reprice recomputes the derived price fields from the referenced item's
// current unit price and the line's quantity.
func reprice(line *models.LineItem) {
	line.OriginalPrice = line.Item.Price * float64(line.Quantity)
	line.Discount = LineItemDiscount(line.Quantity, line.Item.Price)
	line.DiscountedPrice = line.OriginalPrice - line.Discount
}

package models

import "time"

// LineItem is one cart entry. It references the catalog item by pointer, so
// price recomputation always sees the item's current unit price.
type LineItem struct {
	Item            *MenuItem `json:"item"`
	Quantity        int       `json:"quantity"`
	OriginalPrice   float64   `json:"original_price"`
	Discount        float64   `json:"discount"`
	DiscountedPrice float64   `json:"discounted_price"`
}

// Clone returns a deep copy of the line item, detached from the catalog.
func (li *LineItem) Clone() LineItem {
	clone := *li
	clone.Item = li.Item.Clone()
	return clone
}

// Order is an immutable snapshot of a confirmed cart.
type Order struct {
	ID            string     `json:"id"`
	Items         []LineItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	TotalDiscount float64    `json:"total_discount"`
	Total         float64    `json:"total"`
	Timestamp     time.Time  `json:"timestamp"`
}

type OrderMetrics struct {
	TotalOrders     int
	TotalRevenue    float64
	TotalDiscount   float64
	AvgOrderValue   float64
	PopularItems    map[string]int     // Item name -> units ordered
	CategoryRevenue map[string]float64 // Category -> discounted revenue
}

// ComputeOrderMetrics aggregates confirmed orders for reporting.
func ComputeOrderMetrics(orders []Order) OrderMetrics {
	metrics := OrderMetrics{
		PopularItems:    make(map[string]int),
		CategoryRevenue: make(map[string]float64),
	}
	for _, order := range orders {
		metrics.TotalOrders++
		metrics.TotalRevenue += order.Total
		metrics.TotalDiscount += order.TotalDiscount
		for _, item := range order.Items {
			metrics.PopularItems[item.Item.Name] += item.Quantity
			metrics.CategoryRevenue[item.Item.Category] += item.DiscountedPrice
		}
	}
	if metrics.TotalOrders > 0 {
		metrics.AvgOrderValue = metrics.TotalRevenue / float64(metrics.TotalOrders)
	}
	return metrics
}

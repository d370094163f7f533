// Package simulator drives a demo session against the core: it seeds the
// catalog from the configured file, simulates customers browsing, filling and
// confirming carts, emits each confirmed order to an output destination and
// reports aggregate metrics at the end.
package simulator

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"

	"github.com/schollz/progressbar/v3"

	"github.com/pizzadesk/pizzadesk/internal/archive"
	"github.com/pizzadesk/pizzadesk/internal/cart"
	"github.com/pizzadesk/pizzadesk/internal/catalog"
	"github.com/pizzadesk/pizzadesk/internal/factories"
	"github.com/pizzadesk/pizzadesk/internal/models"
	"github.com/pizzadesk/pizzadesk/internal/query"
)

const topicConfirmedOrders = "confirmed_orders"

type Session struct {
	Config  *models.Config
	Catalog *catalog.Store
	Cart    *cart.Cart
	Archive *archive.Archive
	Rng     *rand.Rand

	factory *factories.MenuItemFactory
	output  OutputDestination
}

func NewSession(config *models.Config) (*Session, error) {
	seed, err := models.LoadCatalog(config.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog seed: %w", err)
	}

	history := archive.New()
	return &Session{
		Config:  config,
		Catalog: catalog.New(seed),
		Cart:    cart.New(history),
		Archive: history,
		Rng:     rand.New(rand.NewSource(config.Seed)),
		factory: &factories.MenuItemFactory{},
		output:  determineOutputDestination(config),
	}, nil
}

// Run simulates the configured number of customer orders and prints the
// session metrics.
func (s *Session) Run() error {
	defer func() {
		if err := s.output.Close(); err != nil {
			log.Printf("closing output: %v", err)
		}
	}()

	bar := progressbar.Default(int64(s.Config.Orders))
	for i := 0; i < s.Config.Orders; i++ {
		// Now and then a customer submits a new pizza before ordering.
		if s.Rng.Float64() < 0.1 {
			s.submitNewItem()
		}
		s.placeRandomOrder()
		_ = bar.Add(1)
	}

	s.reportMetrics()
	return nil
}

// submitNewItem pushes a generated pizza through the boundary validation the
// UI form would normally perform.
func (s *Session) submitNewItem() {
	item := s.factory.CreateMenuItem(s.Rng, s.Config.Categories)
	if err := item.Validate(); err != nil {
		log.Printf("rejecting generated menu item: %v", err)
		return
	}
	s.Catalog.Append(item)
}

func (s *Session) placeRandomOrder() {
	view := s.browseCatalog()
	if len(view) == 0 {
		return
	}

	picks := 1 + s.Rng.Intn(3)
	for i := 0; i < picks; i++ {
		item := view[s.Rng.Intn(len(view))]
		s.Cart.AddToOrder(item, 1+s.Rng.Intn(4))
	}

	// Customers change their minds: drop or resize a line occasionally.
	if items := s.Cart.Items(); len(items) > 0 {
		switch s.Rng.Intn(6) {
		case 0:
			s.Cart.RemoveFromOrder(items[0].Item.ID)
		case 1:
			s.Cart.UpdateQuantity(items[0].Item.ID, s.Rng.Intn(6)-1)
		}
	}

	if s.Rng.Float64() < 0.05 {
		s.Cart.ClearOrder()
		return
	}

	if order := s.Cart.ConfirmOrder(); order != nil {
		s.emitOrder(order)
	}
}

// browseCatalog derives the view a customer orders from, using the configured
// browse selection.
func (s *Session) browseCatalog() []*models.MenuItem {
	filtered := query.Filter(s.Catalog.All(), "", "", s.Config.MaxPrice, "")
	return query.Sort(filtered, s.Config.SortBy)
}

func (s *Session) emitOrder(order *models.Order) {
	msg, err := json.Marshal(order)
	if err != nil {
		log.Printf("failed to marshal order %s: %v", order.ID, err)
		return
	}
	if err := s.output.WriteMessage(topicConfirmedOrders, msg); err != nil {
		log.Printf("failed to write order %s: %v", order.ID, err)
	}
}

func (s *Session) reportMetrics() {
	metrics := models.ComputeOrderMetrics(s.Archive.All())

	fmt.Printf("\nSession summary\n")
	fmt.Printf("  catalog items:  %d\n", s.Catalog.Count())
	fmt.Printf("  orders:         %d\n", metrics.TotalOrders)
	fmt.Printf("  revenue:        %.2f\n", metrics.TotalRevenue)
	fmt.Printf("  discounts:      %.2f\n", metrics.TotalDiscount)
	fmt.Printf("  avg order:      %.2f\n", metrics.AvgOrderValue)
	for category, revenue := range metrics.CategoryRevenue {
		fmt.Printf("  category %-12s %.2f\n", category+":", revenue)
	}
}

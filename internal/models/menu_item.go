package models

import (
	"fmt"
	"strings"
)

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Ingredients []string `json:"ingredients"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// Validate checks the submission constraints the core engines assume their
// callers enforce. It belongs at the boundary; the catalog itself never
// re-validates.
func (m *MenuItem) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("menu item name is required")
	}
	if m.Price <= 0 {
		return fmt.Errorf("menu item price must be a positive number, got %v", m.Price)
	}
	if len(m.Ingredients) == 0 {
		return fmt.Errorf("menu item needs at least one ingredient")
	}
	return nil
}

// Clone returns an independent copy, including the ingredient list.
func (m *MenuItem) Clone() *MenuItem {
	clone := *m
	clone.Ingredients = make([]string, len(m.Ingredients))
	copy(clone.Ingredients, m.Ingredients)
	return &clone
}

// ParseIngredients splits a comma-separated ingredient list, trimming
// whitespace and dropping blank entries.
func ParseIngredients(raw string) []string {
	var ingredients []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}
	return ingredients
}

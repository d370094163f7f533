package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzadesk/pizzadesk/internal/models"
)

func samplePizzas() []*models.MenuItem {
	return []*models.MenuItem{
		{ID: "1", Name: "Margherita", Price: 5, Ingredients: []string{"tomato", "mozzarella"}, Category: "classic"},
		{ID: "2", Name: "Pepperoni", Price: 7, Ingredients: []string{"tomato", "pepperoni"}, Category: "classic"},
		{ID: "3", Name: "Hawaiana", Price: 6, Ingredients: []string{"pineapple", "ham"}, Category: "specialty"},
	}
}

func names(items []*models.MenuItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	pizzas := samplePizzas()

	t.Run("search matches names case-insensitively", func(t *testing.T) {
		result := Filter(pizzas, "margherita", "", 100, "")
		require.Len(t, result, 1)
		assert.Equal(t, "Margherita", result[0].Name)
	})

	t.Run("search matches ingredient substrings", func(t *testing.T) {
		result := Filter(pizzas, "PINE", "", 100, "")
		require.Len(t, result, 1)
		assert.Equal(t, "Hawaiana", result[0].Name)
	})

	t.Run("empty search matches everything", func(t *testing.T) {
		assert.Len(t, Filter(pizzas, "", "", 100, ""), 3)
	})

	t.Run("ingredient filter is an exact match", func(t *testing.T) {
		result := Filter(pizzas, "", "tomato", 100, "")
		assert.Equal(t, []string{"Margherita", "Pepperoni"}, names(result))

		// Case-sensitive, unlike search.
		assert.Empty(t, Filter(pizzas, "", "Tomato", 100, ""))
	})

	t.Run("price ceiling is inclusive", func(t *testing.T) {
		result := Filter(pizzas, "", "", 6, "")
		assert.Equal(t, []string{"Margherita", "Hawaiana"}, names(result))
	})

	t.Run("category filter is exact", func(t *testing.T) {
		result := Filter(pizzas, "", "", 100, "specialty")
		require.Len(t, result, 1)
		assert.Equal(t, "Hawaiana", result[0].Name)

		assert.Empty(t, Filter(pizzas, "", "", 100, "Specialty"))
	})

	t.Run("all predicates combine with AND", func(t *testing.T) {
		result := Filter(pizzas, "tomato", "tomato", 6, "classic")
		require.Len(t, result, 1)
		assert.Equal(t, "Margherita", result[0].Name)
	})

	t.Run("empty catalog filters to empty", func(t *testing.T) {
		assert.Empty(t, Filter(nil, "", "", 100, ""))
	})

	t.Run("input order is preserved", func(t *testing.T) {
		result := Filter(pizzas, "", "", 100, "classic")
		assert.Equal(t, []string{"Margherita", "Pepperoni"}, names(result))
	})
}

func TestSort(t *testing.T) {
	t.Run("name ascending uses collation, not code points", func(t *testing.T) {
		pizzas := []*models.MenuItem{
			{ID: "1", Name: "Pepperoni", Price: 7},
			{ID: "2", Name: "Éclair Royale", Price: 9},
			{ID: "3", Name: "Margherita", Price: 5},
		}
		result := Sort(pizzas, models.SortNameAsc)
		assert.Equal(t, []string{"Éclair Royale", "Margherita", "Pepperoni"}, names(result))
	})

	t.Run("name descending", func(t *testing.T) {
		result := Sort(samplePizzas(), models.SortNameDesc)
		assert.Equal(t, []string{"Pepperoni", "Margherita", "Hawaiana"}, names(result))
	})

	t.Run("price ascending", func(t *testing.T) {
		result := Sort(samplePizzas(), models.SortPriceAsc)
		assert.Equal(t, []string{"Margherita", "Hawaiana", "Pepperoni"}, names(result))
	})

	t.Run("price descending", func(t *testing.T) {
		result := Sort(samplePizzas(), models.SortPriceDesc)
		assert.Equal(t, []string{"Pepperoni", "Hawaiana", "Margherita"}, names(result))
	})

	t.Run("price ties keep input order", func(t *testing.T) {
		pizzas := []*models.MenuItem{
			{ID: "1", Name: "B", Price: 5},
			{ID: "2", Name: "A", Price: 5},
		}
		result := Sort(pizzas, models.SortPriceAsc)
		assert.Equal(t, []string{"B", "A"}, names(result))
	})

	t.Run("unknown key returns input order", func(t *testing.T) {
		result := Sort(samplePizzas(), "popularity")
		assert.Equal(t, []string{"Margherita", "Pepperoni", "Hawaiana"}, names(result))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		pizzas := samplePizzas()
		Sort(pizzas, models.SortPriceDesc)
		assert.Equal(t, []string{"Margherita", "Pepperoni", "Hawaiana"}, names(pizzas))
	})
}

package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/pizzadesk/pizzadesk/internal/models"
)

var fake = faker.New()

type MenuItemFactory struct{}

// CreateMenuItem builds a random pizza for the given category labels. The
// caller still owns validation before submitting it to the catalog.
func (mf *MenuItemFactory) CreateMenuItem(rng *rand.Rand, categories []string) *models.MenuItem {
	category := "classic"
	if len(categories) > 0 {
		category = categories[rng.Intn(len(categories))]
	}
	return &models.MenuItem{
		ID:          cuid.New(),
		Name:        pizzaNames[rng.Intn(len(pizzaNames))],
		Price:       fake.Float64(2, 4, 20),
		Ingredients: generateRandomIngredients(rng),
		Category:    category,
		ImageURL:    fake.Internet().URL(),
	}
}

func generateRandomIngredients(rng *rand.Rand) []string {
	allIngredients := []string{"tomato", "mozzarella", "basil", "pepperoni", "mushroom", "onion", "olive", "ham", "pineapple", "gorgonzola", "parmesan", "ricotta", "artichoke", "anchovy", "rocket"}
	ingredientCount := rng.Intn(4) + 2 // 2 to 5 ingredients
	ingredients := make([]string, ingredientCount)
	for i := 0; i < ingredientCount; i++ {
		ingredients[i] = allIngredients[rng.Intn(len(allIngredients))]
	}
	return ingredients
}

var pizzaNames = []string{
	"Margherita",
	"Pepperoni",
	"Quattro Stagioni",
	"Diavola",
	"Capricciosa",
	"Quattro Formaggi",
	"Marinara",
	"Prosciutto e Funghi",
	"Ortolana",
	"Calzone",
	"Bufalina",
	"Tonno e Cipolla",
}

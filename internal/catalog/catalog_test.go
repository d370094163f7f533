package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzadesk/pizzadesk/internal/models"
)

func TestStoreKeepsInsertionOrder(t *testing.T) {
	seed := []*models.MenuItem{
		{ID: "1", Name: "Margherita"},
		{ID: "2", Name: "Pepperoni"},
	}
	store := New(seed)
	store.Append(&models.MenuItem{ID: "3", Name: "Hawaiana"})
	store.Append(&models.MenuItem{ID: "4", Name: "Diavola"})

	items := store.All()
	require.Len(t, items, 4)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "3", items[2].ID)
	assert.Equal(t, "4", items[3].ID)
	assert.Equal(t, 4, store.Count())
}

func TestStoreAcceptsDuplicateIDs(t *testing.T) {
	store := New(nil)
	store.Append(&models.MenuItem{ID: "1", Name: "Margherita"})
	store.Append(&models.MenuItem{ID: "1", Name: "Margherita Bis"})

	assert.Equal(t, 2, store.Count())
}

func TestAllReturnsACopy(t *testing.T) {
	store := New([]*models.MenuItem{{ID: "1", Name: "Margherita"}})

	items := store.All()
	items[0] = &models.MenuItem{ID: "hijacked"}

	assert.Equal(t, "1", store.All()[0].ID)
}

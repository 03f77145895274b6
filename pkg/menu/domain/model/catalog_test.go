package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
)

func TestNewCatalog(t *testing.T) {
	t.Run("Keeps declaration order", func(t *testing.T) {
		catalog, err := model.NewCatalog([]model.CatalogItem{
			{ID: 9, Name: "Vegan Burger", PriceCents: 490},
			{ID: 1, Name: "Bucket Tenders + HotWings", PriceCents: 1800},
		})
		require.NoError(t, err)

		items := catalog.Items()
		require.Len(t, items, 2)
		assert.Equal(t, 9, items[0].ID)
		assert.Equal(t, 1, items[1].ID)

		item, err := catalog.Find(1)
		require.NoError(t, err)
		assert.Equal(t, "Bucket Tenders + HotWings", item.Name)

		_, err = catalog.Find(6)
		assert.ErrorIs(t, err, model.ErrCatalogItemNotFound)
	})

	t.Run("Fail on duplicate id", func(t *testing.T) {
		_, err := model.NewCatalog([]model.CatalogItem{{ID: 1}, {ID: 1}})
		assert.ErrorIs(t, err, model.ErrDuplicateCatalogItem)
	})

	t.Run("Fail on negative price", func(t *testing.T) {
		_, err := model.NewCatalog([]model.CatalogItem{{ID: 1, PriceCents: -1}})
		assert.ErrorIs(t, err, model.ErrNegativePrice)
	})
}

package session

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
)

func TestStoreDo(t *testing.T) {
	store := NewStore()
	id := store.Create()
	require.True(t, store.Exists(id))

	err := store.Do(id, func(session *model.Session) error {
		assert.Equal(t, id, session.ID)
		session.Cart.Add(model.CatalogItem{ID: 1, PriceCents: 1800})
		return nil
	})
	require.NoError(t, err)

	_ = store.Do(id, func(session *model.Session) error {
		assert.Equal(t, int64(1800), session.Cart.Total())
		return nil
	})

	err = store.Do(uuid.New(), func(*model.Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreDoSerializesSession(t *testing.T) {
	store := NewStore()
	id := store.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Do(id, func(session *model.Session) error {
				session.Cart.Add(model.CatalogItem{ID: 20, PriceCents: 80})
				return nil
			})
		}()
	}
	wg.Wait()

	_ = store.Do(id, func(session *model.Session) error {
		assert.Equal(t, 50, session.Cart.Len())
		assert.Equal(t, int64(4000), session.Cart.Total())
		return nil
	})
}

func TestStoreEvict(t *testing.T) {
	store := NewStore()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	stale := store.Create()
	now = now.Add(20 * time.Minute)
	fresh := store.Create()
	now = now.Add(15 * time.Minute)

	assert.Equal(t, 1, store.Evict(30*time.Minute))
	assert.False(t, store.Exists(stale))
	assert.True(t, store.Exists(fresh))
	assert.Equal(t, 1, store.Len())
}

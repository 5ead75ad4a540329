package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"myuserapp/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty_store", func(t *testing.T) {
		s := NewUserStore()
		_, ok, err := s.First(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = s.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("save_get_first", func(t *testing.T) {
		s := NewUserStore()
		require.NoError(t, s.Save(ctx, domain.User{ID: "1", Name: "tony"}))
		require.NoError(t, s.Save(ctx, domain.User{ID: "2", Name: "pepper"}))

		got, err := s.Get(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, domain.User{ID: "2", Name: "pepper"}, got)

		first, ok, err := s.First(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "1", first.ID)
	})

	t.Run("overwrite_keeps_order", func(t *testing.T) {
		s := NewUserStore()
		require.NoError(t, s.Save(ctx, domain.User{ID: "1", Name: "tony"}))
		require.NoError(t, s.Save(ctx, domain.User{ID: "2", Name: "pepper"}))
		require.NoError(t, s.Save(ctx, domain.User{ID: "1", Name: "tony stark"}))

		first, ok, err := s.First(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, domain.User{ID: "1", Name: "tony stark"}, first)
	})

	t.Run("concurrent_saves", func(t *testing.T) {
		s := NewUserStore()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, s.Save(ctx, domain.User{ID: fmt.Sprint(i), Name: "n"}))
			}(i)
		}
		wg.Wait()
		for i := 0; i < 50; i++ {
			_, err := s.Get(ctx, fmt.Sprint(i))
			assert.NoError(t, err)
		}
	})
}

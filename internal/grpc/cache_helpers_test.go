package grpc

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/peacelens/transcript-scorer/internal/grpc/mocks"
)

func TestTTLWithJitter(t *testing.T) {
	t.Run("stays within 15 seconds of the base", func(t *testing.T) {
		base := 10 * time.Minute
		for i := 0; i < 100; i++ {
			got := ttlWithJitter(base)
			assert.GreaterOrEqual(t, got, base-15*time.Second)
			assert.LessOrEqual(t, got, base+15*time.Second)
		}
	})

	t.Run("non-positive ttl passes through", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), ttlWithJitter(0))
	})
}

func TestFindAndCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss fetches and writes back", func(t *testing.T) {
		var wrote sync.WaitGroup
		wrote.Add(1)

		var setKey string
		cache := &mocks.MockCacher{
			SetFunc: func(_ context.Context, key string, _ any, _ time.Duration) error {
				setKey = key
				wrote.Done()
				return nil
			},
		}

		var sf singleflight.Group
		got, err := FindAndCache(ctx, cache, &sf, "k1", time.Minute, zap.NewNop(), func(context.Context) (string, error) {
			return "fetched", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "fetched", got)

		wrote.Wait()
		assert.Equal(t, "k1", setKey)
	})

	t.Run("hit returns the cached value", func(t *testing.T) {
		cache := &mocks.MockCacher{
			GetFunc: func(_ context.Context, _ string, dest any) error {
				*(dest.(*string)) = "cached"
				return nil
			},
		}

		var fetches atomic.Int32
		var sf singleflight.Group
		got, err := FindAndCache(ctx, cache, &sf, "k2", time.Minute, zap.NewNop(), func(context.Context) (string, error) {
			fetches.Add(1)
			return "fetched", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "cached", got)
	})

	t.Run("fetch error propagates on a miss", func(t *testing.T) {
		var sf singleflight.Group
		_, err := FindAndCache(ctx, &mocks.MockCacher{}, &sf, "k3", time.Minute, zap.NewNop(), func(context.Context) (string, error) {
			return "", errors.New("backend down")
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend down")
	})

	t.Run("cache errors degrade to a fetch", func(t *testing.T) {
		cache := &mocks.MockCacher{
			GetFunc: func(context.Context, string, any) error {
				return errors.New("redis connection refused")
			},
		}

		var sf singleflight.Group
		got, err := FindAndCache(ctx, cache, &sf, "k4", time.Minute, zap.NewNop(), func(context.Context) (string, error) {
			return "fetched", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "fetched", got)
	})

	t.Run("concurrent misses share one fetch", func(t *testing.T) {
		var fetches atomic.Int32
		release := make(chan struct{})

		var sf singleflight.Group
		cache := &mocks.MockCacher{}

		const callers = 8
		results := make(chan string, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := FindAndCache(ctx, cache, &sf, "k5", time.Minute, zap.NewNop(), func(context.Context) (string, error) {
					fetches.Add(1)
					<-release
					return "shared", nil
				})
				assert.NoError(t, err)
				results <- got
			}()
		}

		// Let the goroutines pile up on the singleflight key before
		// releasing the in-flight fetch.
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()
		close(results)

		for got := range results {
			assert.Equal(t, "shared", got)
		}
		assert.LessOrEqual(t, fetches.Load(), int32(2))
	})
}

package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/catalog"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/mocks"
)

type fixedBounds struct {
	bounds model.Bounds
	err    error
}

func (f fixedBounds) Bounds() (model.Bounds, error) { return f.bounds, f.err }

func TestStoreCreatesSessionsWithFullRanges(t *testing.T) {
	t.Parallel()

	store := NewStore(fixedBounds{bounds: model.Bounds{MaxPrice: 90, MaxMOQ: 300}})

	sess := store.Get("client-1")
	assert.Same(t, sess, store.Get("client-1"))
	assert.NotSame(t, sess, store.Get("client-2"))

	st := sess.State()
	assert.Equal(t, model.Range[float64]{Min: 0, Max: 90}, st.PriceRange)
	assert.Equal(t, model.Range[int64]{Min: 0, Max: 300}, st.MOQRange)
	assert.Equal(t, model.ViewModeAll, st.ViewMode)
	assert.Empty(t, st.SelectedCountries)
	assert.Empty(t, st.SearchTerm)
}

func TestStoreUsesFallbackBoundsForEmptyCatalog(t *testing.T) {
	t.Parallel()

	fallback := model.Bounds{MaxPrice: 1000, MaxMOQ: 1000}
	store := NewStore(fixedBounds{bounds: fallback, err: model.ErrEmptyCatalog})

	assert.Equal(t, fallback, store.Get("c").Bounds())
}

func TestSessionSettersAndReset(t *testing.T) {
	t.Parallel()

	sess := newSession("c", model.Bounds{MaxPrice: 50, MaxMOQ: 20})

	sess.SetSearchTerm("bag")
	sess.SetPriceRange(model.Range[float64]{Min: 5, Max: 10})
	sess.SetMOQRange(model.Range[int64]{Min: 1, Max: 2})
	sess.SetCountries([]string{" Kenya ", "Peru", "Kenya", ""})
	st := sess.SetViewMode(model.ViewModeFavorites)

	assert.Equal(t, "bag", st.SearchTerm)
	assert.Equal(t, []string{"Kenya", "Peru"}, st.SelectedCountries)
	assert.Equal(t, model.ViewModeFavorites, st.ViewMode)

	st = sess.ToggleCountry("Kenya")
	assert.Equal(t, []string{"Peru"}, st.SelectedCountries)
	st = sess.ToggleCountry("India")
	assert.Equal(t, []string{"Peru", "India"}, st.SelectedCountries)

	st = sess.Reset()
	assert.Equal(t, model.FullFilter(model.Bounds{MaxPrice: 50, MaxMOQ: 20}), st)
}

func TestSessionStateIsACopy(t *testing.T) {
	t.Parallel()

	sess := newSession("c", model.Bounds{MaxPrice: 50, MaxMOQ: 20})
	sess.SetCountries([]string{"Kenya"})

	st := sess.State()
	st.SelectedCountries[0] = "Peru"

	assert.Equal(t, []string{"Kenya"}, sess.State().SelectedCountries)
}

func TestStoreReclampFollowsFullRange(t *testing.T) {
	t.Parallel()

	store := NewStore(fixedBounds{bounds: model.Bounds{MaxPrice: 50, MaxMOQ: 20}})
	full := store.Get("full")
	narrow := store.Get("narrow")
	narrow.SetPriceRange(model.Range[float64]{Min: 5, Max: 30})

	store.Reclamp(model.Bounds{MaxPrice: 50, MaxMOQ: 20}, model.Bounds{MaxPrice: 120, MaxMOQ: 40})

	assert.Equal(t, model.Range[float64]{Min: 0, Max: 120}, full.State().PriceRange)
	assert.Equal(t, model.Range[int64]{Min: 0, Max: 40}, full.State().MOQRange)
	assert.Equal(t, model.Range[float64]{Min: 5, Max: 30}, narrow.State().PriceRange)
	assert.Equal(t, model.Bounds{MaxPrice: 120, MaxMOQ: 40}, narrow.Bounds())
}

func TestStoreEvictKeepsBusyAndFreshSessions(t *testing.T) {
	t.Parallel()

	var (
		mu  sync.Mutex
		now = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	)
	store := NewStore(fixedBounds{bounds: model.Bounds{MaxPrice: 1, MaxMOQ: 1}})
	store.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	store.Get("idle")
	busy := store.Get("busy")
	busy.begin()

	mu.Lock()
	now = now.Add(2 * time.Hour)
	mu.Unlock()
	store.Get("fresh")

	require.Equal(t, 1, store.Evict(time.Hour))
	assert.Equal(t, 2, store.Len())
}

func TestStoreFollowsCatalogBoundsUnderConcurrentAppends(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mocks.NewMockBatchRepository(t)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	cat := catalog.NewCatalogService(repo, model.Bounds{MaxPrice: 1000, MaxMOQ: 1000}, time.Second, time.Second)

	entered := make(chan struct{})
	release := make(chan struct{})
	cat.Subscribe(func(_, next model.Bounds) {
		if next.MaxPrice == 200 {
			close(entered)
			<-release
		}
	})

	store := NewStore(cat)
	cat.Subscribe(store.Reclamp)

	require.NoError(t, cat.Add(ctx, &model.ProductBatch{ID: "batch_100", UnitPriceUSD: 100, MOQ: 1}))
	sess := store.Get("client-1")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, cat.Add(ctx, &model.ProductBatch{ID: "batch_200", UnitPriceUSD: 200, MOQ: 1}))
	}()
	<-entered
	go func() {
		defer wg.Done()
		assert.NoError(t, cat.Add(ctx, &model.ProductBatch{ID: "batch_300", UnitPriceUSD: 300, MOQ: 1}))
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	bounds, err := cat.Bounds()
	require.NoError(t, err)
	assert.Equal(t, model.Bounds{MaxPrice: 300, MaxMOQ: 1}, bounds)
	assert.Equal(t, bounds, sess.Bounds())

	st := sess.Reset()
	assert.Equal(t, model.Range[float64]{Min: 0, Max: 300}, st.PriceRange)
	assert.Len(t, catalog.Filter(cat.Snapshot(), st, nil), 3)
}

func TestStoreJanitorSweepsExpirers(t *testing.T) {
	t.Parallel()

	swept := make(chan time.Duration, 1)
	store := NewStore(fixedBounds{bounds: model.Bounds{MaxPrice: 1, MaxMOQ: 1}}).
		ExpireWith(Expirer{Name: "drafts", Evict: func(ttl time.Duration) int {
			select {
			case swept <- ttl:
			default:
			}
			return 1
		}})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.RunJanitor(ctx, time.Millisecond, time.Hour) }()

	assert.Equal(t, time.Hour, <-swept)
	cancel()
	require.NoError(t, <-done)
}

package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/catalog"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/mocks"
)

type staticCountries []string

func (s staticCountries) Countries() []string { return s }

type recordingMetrics struct {
	mu       sync.Mutex
	outcomes []string
}

func (m *recordingMetrics) ObserveInterpretation(outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

var testBounds = model.Bounds{MaxPrice: 50, MaxMOQ: 20}

func scenarioCatalog() []*model.ProductBatch {
	return []*model.ProductBatch{
		{ID: "a", UnitPriceUSD: 10, MOQ: 5, Country: "Kenya", Title: "Leather Bag"},
		{ID: "b", UnitPriceUSD: 50, MOQ: 20, Country: "Peru", Title: "Wool Scarf"},
		{ID: "c", UnitPriceUSD: 15, MOQ: 8, Country: "Kenya", Title: "Beaded Bracelet"},
		{ID: "d", UnitPriceUSD: 25, MOQ: 10, Country: "Peru", Title: "Tote bag"},
	}
}

func TestBridgeSearch(t *testing.T) {
	t.Parallel()

	type deps struct {
		interpreter *mocks.MockInterpreter
		metrics     *recordingMetrics
	}

	type testCase struct {
		name   string
		query  string
		prior  func(s *Session)
		setup  func(d deps)
		assert func(t *testing.T, res SearchResult, d deps)
	}

	tests := []testCase{
		{
			name:  "countries only keeps prior search term",
			query: "stuff from kenya",
			prior: func(s *Session) { s.SetSearchTerm("bag") },
			setup: func(d deps) {
				d.interpreter.
					On("Interpret", mock.Anything, "stuff from kenya").
					Return(model.PartialFilter{Countries: []string{"kenya"}}, nil).
					Once()
			},
			assert: func(t *testing.T, res SearchResult, d deps) {
				assert.False(t, res.Fallback)
				assert.False(t, res.Stale)
				assert.Equal(t, "bag", res.State.SearchTerm)
				assert.Equal(t, []string{"Kenya"}, res.State.SelectedCountries)

				got := catalog.Filter(scenarioCatalog(), res.State, nil)
				assert.Equal(t, []string{"a"}, lo.Map(got, func(b *model.ProductBatch, _ int) string { return b.ID }))
				assert.Equal(t, []string{OutcomeApplied}, d.metrics.outcomes)
			},
		},
		{
			name:  "interpreter failure uses raw input verbatim",
			query: "  Cheap SCARVES  ",
			prior: func(s *Session) {
				s.SetCountries([]string{"Peru"})
				s.SetPriceRange(model.Range[float64]{Min: 1, Max: 2})
			},
			setup: func(d deps) {
				d.interpreter.
					On("Interpret", mock.Anything, "  Cheap SCARVES  ").
					Return(model.PartialFilter{}, errors.New("503 from upstream")).
					Once()
			},
			assert: func(t *testing.T, res SearchResult, d deps) {
				assert.True(t, res.Fallback)
				assert.Equal(t, "  Cheap SCARVES  ", res.State.SearchTerm)
				assert.Equal(t, []string{"Peru"}, res.State.SelectedCountries)
				assert.Equal(t, model.Range[float64]{Min: 1, Max: 2}, res.State.PriceRange)
				assert.Equal(t, []string{OutcomeFallback}, d.metrics.outcomes)
			},
		},
		{
			name:  "empty query never reaches the interpreter",
			query: "   ",
			setup: func(d deps) {},
			assert: func(t *testing.T, res SearchResult, d deps) {
				assert.True(t, res.Fallback)
				assert.Equal(t, "   ", res.State.SearchTerm)
				d.interpreter.AssertNotCalled(t, "Interpret", mock.Anything, mock.Anything)
			},
		},
		{
			name:  "single max price resets min to zero",
			query: "under 30 dollars",
			prior: func(s *Session) { s.SetPriceRange(model.Range[float64]{Min: 12, Max: 40}) },
			setup: func(d deps) {
				d.interpreter.
					On("Interpret", mock.Anything, "under 30 dollars").
					Return(model.PartialFilter{MaxPrice: lo.ToPtr(30.0)}, nil).
					Once()
			},
			assert: func(t *testing.T, res SearchResult, d deps) {
				assert.Equal(t, model.Range[float64]{Min: 0, Max: 30}, res.State.PriceRange)
				assert.Equal(t, model.Range[int64]{Min: 0, Max: 20}, res.State.MOQRange)
			},
		},
		{
			name:  "single min moq extends to the catalog bound",
			query: "at least 10 units",
			setup: func(d deps) {
				d.interpreter.
					On("Interpret", mock.Anything, "at least 10 units").
					Return(model.PartialFilter{MinMOQ: lo.ToPtr[int64](10), SearchTerm: lo.ToPtr("")}, nil).
					Once()
			},
			assert: func(t *testing.T, res SearchResult, d deps) {
				assert.Equal(t, model.Range[int64]{Min: 10, Max: 20}, res.State.MOQRange)
				assert.Equal(t, "", res.State.SearchTerm)
			},
		},
		{
			name:  "min above max is kept literally",
			query: "between 40 and 10",
			setup: func(d deps) {
				d.interpreter.
					On("Interpret", mock.Anything, "between 40 and 10").
					Return(model.PartialFilter{MinPrice: lo.ToPtr(40.0), MaxPrice: lo.ToPtr(10.0)}, nil).
					Once()
			},
			assert: func(t *testing.T, res SearchResult, d deps) {
				assert.Equal(t, model.Range[float64]{Min: 40, Max: 10}, res.State.PriceRange)
				assert.Empty(t, catalog.Filter(scenarioCatalog(), res.State, nil))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				interpreter: mocks.NewMockInterpreter(t),
				metrics:     &recordingMetrics{},
			}
			tt.setup(d)

			sess := newSession("client", testBounds)
			if tt.prior != nil {
				tt.prior(sess)
			}

			b := NewBridge(d.interpreter, staticCountries{"Kenya", "Peru"}, d.metrics, time.Second)
			res := b.Search(context.Background(), sess, tt.query)
			tt.assert(t, res, d)
			assert.False(t, sess.Busy())
		})
	}
}

func TestBridgeTimeoutFallsBack(t *testing.T) {
	t.Parallel()

	interp := mocks.NewMockInterpreter(t)
	interp.
		On("Interpret", mock.Anything, "slow").
		Return(func(ctx context.Context, _ string) (model.PartialFilter, error) {
			<-ctx.Done()
			return model.PartialFilter{}, ctx.Err()
		}).
		Once()

	sess := newSession("client", testBounds)
	b := NewBridge(interp, nil, nil, 20*time.Millisecond)

	res := b.Search(context.Background(), sess, "slow")
	assert.True(t, res.Fallback)
	assert.Equal(t, "slow", res.State.SearchTerm)
}

func TestBridgeLastSubmittedWins(t *testing.T) {
	t.Parallel()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	interp := mocks.NewMockInterpreter(t)
	interp.
		On("Interpret", mock.Anything, "first").
		Return(func(context.Context, string) (model.PartialFilter, error) {
			close(firstStarted)
			<-releaseFirst
			return model.PartialFilter{SearchTerm: lo.ToPtr("first")}, nil
		}).
		Once()
	interp.
		On("Interpret", mock.Anything, "second").
		Return(model.PartialFilter{SearchTerm: lo.ToPtr("second")}, nil).
		Once()

	metrics := &recordingMetrics{}
	sess := newSession("client", testBounds)
	b := NewBridge(interp, nil, metrics, time.Second)

	firstDone := make(chan SearchResult, 1)
	go func() { firstDone <- b.Search(context.Background(), sess, "first") }()
	<-firstStarted
	assert.True(t, sess.Busy())

	second := b.Search(context.Background(), sess, "second")
	require.False(t, second.Stale)
	assert.Equal(t, "second", second.State.SearchTerm)
	assert.True(t, sess.Busy(), "first request still in flight")

	close(releaseFirst)
	first := <-firstDone

	assert.True(t, first.Stale)
	assert.Less(t, first.Seq, second.Seq)
	assert.Equal(t, "second", sess.State().SearchTerm)
	assert.False(t, sess.Busy())
	assert.ElementsMatch(t, []string{OutcomeApplied, OutcomeStale}, metrics.outcomes)
}

func TestMergeLeavesAbsentFieldsUntouched(t *testing.T) {
	t.Parallel()

	prior := model.FilterState{
		SearchTerm:        "bag",
		PriceRange:        model.Range[float64]{Min: 3, Max: 9},
		MOQRange:          model.Range[int64]{Min: 2, Max: 4},
		SelectedCountries: []string{"Peru"},
		ViewMode:          model.ViewModeFavorites,
	}

	assert.Equal(t, prior, Merge(prior, model.PartialFilter{}, testBounds))

	cleared := Merge(prior, model.PartialFilter{Countries: []string{}}, testBounds)
	assert.Empty(t, cleared.SelectedCountries)
	assert.Equal(t, model.ViewModeFavorites, cleared.ViewMode)
}

func TestBridgeManualEditSupersedesPendingSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		edit   func(s *Session)
		stale  bool
		assert func(t *testing.T, st model.FilterState)
	}{
		{
			name:  "price range edit wins",
			edit:  func(s *Session) { s.SetPriceRange(model.Range[float64]{Min: 2, Max: 8}) },
			stale: true,
			assert: func(t *testing.T, st model.FilterState) {
				assert.Equal(t, model.Range[float64]{Min: 2, Max: 8}, st.PriceRange)
				assert.Empty(t, st.SelectedCountries)
			},
		},
		{
			name:  "reset wins",
			edit:  func(s *Session) { s.Reset() },
			stale: true,
			assert: func(t *testing.T, st model.FilterState) {
				assert.Equal(t, model.FullFilter(testBounds), st)
			},
		},
		{
			name:  "view mode change keeps the pending search",
			edit:  func(s *Session) { s.SetViewMode(model.ViewModeFavorites) },
			stale: false,
			assert: func(t *testing.T, st model.FilterState) {
				assert.Equal(t, model.ViewModeFavorites, st.ViewMode)
				assert.Equal(t, []string{"Kenya"}, st.SelectedCountries)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			started := make(chan struct{})
			release := make(chan struct{})

			interp := mocks.NewMockInterpreter(t)
			interp.
				On("Interpret", mock.Anything, "bags from kenya").
				Return(func(context.Context, string) (model.PartialFilter, error) {
					close(started)
					<-release
					return model.PartialFilter{Countries: []string{"Kenya"}}, nil
				}).
				Once()

			sess := newSession("client", testBounds)
			b := NewBridge(interp, nil, nil, time.Second)

			done := make(chan SearchResult, 1)
			go func() { done <- b.Search(context.Background(), sess, "bags from kenya") }()
			<-started

			tt.edit(sess)
			close(release)

			res := <-done
			assert.Equal(t, tt.stale, res.Stale)
			assert.False(t, sess.Busy())
			tt.assert(t, sess.State())
		})
	}
}

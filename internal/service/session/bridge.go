package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

type Interpreter interface {
	Interpret(ctx context.Context, query string) (model.PartialFilter, error)
}

type CountrySource interface {
	Countries() []string
}

type Metrics interface {
	ObserveInterpretation(outcome string, took time.Duration)
}

const (
	OutcomeApplied  = "applied"
	OutcomeFallback = "fallback"
	OutcomeStale    = "stale"
)

type SearchResult struct {
	Seq   uint64
	State model.FilterState
	// Stale is set when a later submission superseded this one; State is then
	// the session's current state, untouched by this call.
	Stale    bool
	Fallback bool
}

type bridge struct {
	interpreter Interpreter
	countries   CountrySource
	metrics     Metrics
	timeout     time.Duration
}

func NewBridge(interpreter Interpreter, countries CountrySource, metrics Metrics, timeout time.Duration) *bridge {
	return &bridge{
		interpreter: interpreter,
		countries:   countries,
		metrics:     metrics,
		timeout:     timeout,
	}
}

// Search translates query into filter changes for sess. Interpreter failures
// fall back to a plain text search on the raw query. Only the latest
// submission per session may change its state.
func (b *bridge) Search(ctx context.Context, sess *Session, query string) SearchResult {
	log := logger.With(
		logger.String("client_id", sess.ClientID()),
	)

	seq := sess.begin()
	start := time.Now()

	partial, err := b.interpret(ctx, query)
	if err != nil {
		log.Warn(ctx, "query interpreter failed, falling back to text search",
			logger.Uint64("seq", seq),
			logger.ErrorF(err),
		)
	}

	state, applied := sess.commit(seq, func(st *model.FilterState, bounds model.Bounds) {
		if err != nil {
			st.SearchTerm = query
			return
		}
		*st = Merge(*st, partial, bounds)
	})

	outcome := OutcomeApplied
	switch {
	case !applied:
		outcome = OutcomeStale
		log.Info(ctx, "stale interpreter result discarded", logger.Uint64("seq", seq))
	case err != nil:
		outcome = OutcomeFallback
	}
	if b.metrics != nil {
		b.metrics.ObserveInterpretation(outcome, time.Since(start))
	}

	return SearchResult{
		Seq:      seq,
		State:    state,
		Stale:    !applied,
		Fallback: applied && err != nil,
	}
}

func (b *bridge) interpret(ctx context.Context, query string) (model.PartialFilter, error) {
	const op = "session.bridge.interpret"

	if strings.TrimSpace(query) == "" {
		return model.PartialFilter{}, fmt.Errorf("%s: %w", op,
			errors.Join(model.ErrInterpreterFailure, errors.New("empty query")))
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	partial, err := b.interpreter.Interpret(ctx, query)
	if err != nil {
		return model.PartialFilter{}, fmt.Errorf("%s: %w", op, errors.Join(model.ErrInterpreterFailure, err))
	}

	if partial.Countries != nil && b.countries != nil {
		partial.Countries = canonicalCountries(partial.Countries, b.countries.Countries())
	}
	return partial, nil
}

// Merge overwrites the fields present in partial. A single present price or
// MOQ bound resets the other end of that range to its full extent.
func Merge(state model.FilterState, partial model.PartialFilter, bounds model.Bounds) model.FilterState {
	out := state.Clone()

	if partial.SearchTerm != nil {
		out.SearchTerm = *partial.SearchTerm
	}
	if partial.Countries != nil {
		out.SelectedCountries = slices.Clone(partial.Countries)
	}
	if partial.MinPrice != nil || partial.MaxPrice != nil {
		out.PriceRange = model.Range[float64]{
			Min: lo.FromPtrOr(partial.MinPrice, 0),
			Max: lo.FromPtrOr(partial.MaxPrice, bounds.MaxPrice),
		}
	}
	if partial.MinMOQ != nil || partial.MaxMOQ != nil {
		out.MOQRange = model.Range[int64]{
			Min: lo.FromPtrOr(partial.MinMOQ, 0),
			Max: lo.FromPtrOr(partial.MaxMOQ, bounds.MaxMOQ),
		}
	}

	return out
}

// canonicalCountries maps interpreter spellings onto catalog spellings,
// ignoring case. Unknown names are kept as given.
func canonicalCountries(requested, known []string) []string {
	byFold := lo.SliceToMap(known, func(c string) (string, string) {
		return strings.ToLower(c), c
	})

	out := make([]string, 0, len(requested))
	for _, c := range requested {
		if canon, ok := byFold[strings.ToLower(strings.TrimSpace(c))]; ok {
			c = canon
		}
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

type BatchRepository interface {
	List(ctx context.Context) ([]*model.ProductBatch, error)
	Create(ctx context.Context, batch *model.ProductBatch) error
}

// BoundsListener is notified after every catalog change.
type BoundsListener func(prev, next model.Bounds)

type service struct {
	repo           BatchRepository
	fallback       model.Bounds
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration

	// notifyMu orders bounds notifications the same way changes are applied.
	// It is taken before mu.
	notifyMu sync.Mutex

	mu        sync.RWMutex
	snapshot  []*model.ProductBatch
	index     map[string]*model.ProductBatch
	bounds    model.Bounds
	listeners []BoundsListener
}

func NewCatalogService(
	repo BatchRepository,
	fallback model.Bounds,
	readDBTimeout, writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		fallback:       fallback,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		index:          make(map[string]*model.ProductBatch),
		bounds:         fallback,
	}
}

// Load replaces the in-memory snapshot with the repository contents.
func (s *service) Load(ctx context.Context) error {
	const op = "catalog.service.Load"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	batches, err := s.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list batches", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	prev := s.bounds
	s.snapshot = slices.Clip(batches)
	s.index = lo.KeyBy(batches, func(b *model.ProductBatch) string { return b.ID })
	s.bounds = s.deriveLocked()
	next, listeners := s.bounds, slices.Clone(s.listeners)
	s.mu.Unlock()

	logger.Info(ctx, "catalog loaded",
		logger.Int("batches", len(batches)),
		logger.Float64("max_price", next.MaxPrice),
		logger.Int64("max_moq", next.MaxMOQ),
	)
	notify(listeners, prev, next)
	return nil
}

// Snapshot returns the catalog in insertion order. The slice must not be modified.
func (s *service) Snapshot() []*model.ProductBatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *service) Batch(_ context.Context, id string) (*model.ProductBatch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.Join(model.ErrValidation, errors.New("batch id must be non-empty"))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.index[id]
	if !ok {
		return nil, model.ErrBatchNotFound
	}
	return b, nil
}

// Bounds returns the derived bounds, or the configured fallback with
// model.ErrEmptyCatalog when the catalog is empty.
func (s *service) Bounds() (model.Bounds, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.snapshot) == 0 {
		return s.fallback, model.ErrEmptyCatalog
	}
	return s.bounds, nil
}

func (s *service) Countries() []string {
	return s.distinct(func(b *model.ProductBatch) string { return b.Country })
}

func (s *service) Categories() []string {
	return s.distinct(func(b *model.ProductBatch) string { return b.Category })
}

func (s *service) Subscribe(l BoundsListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Add validates and appends a new batch. A duplicate id is rejected.
func (s *service) Add(ctx context.Context, batch *model.ProductBatch) error {
	const op = "catalog.service.Add"

	if err := validateBatch(batch); err != nil {
		return err
	}

	if err := s.append(ctx, batch, false); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Ingest appends a batch received from another process. Duplicates are ignored.
// A batch the repository already holds, as when instances share a database,
// still joins the in-memory catalog.
func (s *service) Ingest(ctx context.Context, batch *model.ProductBatch) (bool, error) {
	const op = "catalog.service.Ingest"

	if err := validateBatch(batch); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	err := s.append(ctx, batch, true)
	switch {
	case errors.Is(err, model.ErrBatchAlreadyExists):
		logger.Info(ctx, "duplicate batch ignored", logger.String("batch_id", batch.ID))
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

func (s *service) append(ctx context.Context, batch *model.ProductBatch, stored bool) error {
	if batch.ListedAt.IsZero() {
		batch.ListedAt = time.Now().UTC()
	}

	s.mu.RLock()
	_, exists := s.index[batch.ID]
	s.mu.RUnlock()
	if exists {
		return model.ErrBatchAlreadyExists
	}

	wctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	err := s.repo.Create(wctx, batch)
	if stored && errors.Is(err, model.ErrBatchAlreadyExists) {
		err = nil
	}
	if err != nil {
		logger.Error(ctx, "repository create batch",
			logger.String("batch_id", batch.ID),
			logger.ErrorF(err),
		)
		return err
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if _, ok := s.index[batch.ID]; ok {
		s.mu.Unlock()
		return model.ErrBatchAlreadyExists
	}
	prev := s.bounds
	next := make([]*model.ProductBatch, len(s.snapshot), len(s.snapshot)+1)
	copy(next, s.snapshot)
	s.snapshot = append(next, batch)
	s.index[batch.ID] = batch
	s.bounds = s.deriveLocked()
	nextBounds, listeners := s.bounds, slices.Clone(s.listeners)
	s.mu.Unlock()

	logger.Info(ctx, "batch appended to catalog",
		logger.String("batch_id", batch.ID),
		logger.String("country", batch.Country),
	)
	notify(listeners, prev, nextBounds)
	return nil
}

func (s *service) deriveLocked() model.Bounds {
	b, err := DeriveBounds(s.snapshot)
	if err != nil {
		return s.fallback
	}
	return b
}

func (s *service) distinct(key func(*model.ProductBatch) string) []string {
	s.mu.RLock()
	values := lo.Uniq(lo.FilterMap(s.snapshot, func(b *model.ProductBatch, _ int) (string, bool) {
		v := key(b)
		return v, v != ""
	}))
	s.mu.RUnlock()

	slices.Sort(values)
	return values
}

func notify(listeners []BoundsListener, prev, next model.Bounds) {
	for _, l := range listeners {
		l(prev, next)
	}
}

func validateBatch(b *model.ProductBatch) error {
	switch {
	case b == nil:
		return errors.Join(model.ErrValidation, errors.New("batch must be non-nil"))
	case strings.TrimSpace(b.ID) == "":
		return errors.Join(model.ErrValidation, errors.New("batch id must be non-empty"))
	case b.UnitPriceUSD < 0 || math.IsNaN(b.UnitPriceUSD) || math.IsInf(b.UnitPriceUSD, 0):
		return errors.Join(model.ErrValidation, errors.New("unit price must be a non-negative number"))
	case b.MOQ < 0 || b.QtyAvailable < 0 || b.LeadTimeDays < 0:
		return errors.Join(model.ErrValidation, errors.New("quantities must be non-negative"))
	case b.Status != "" && !b.Status.Valid():
		return errors.Join(model.ErrValidation, fmt.Errorf("unknown status %q", b.Status))
	case b.MLQualityScore != nil && !b.MLQualityScore.Valid():
		return errors.Join(model.ErrValidation, fmt.Errorf("unknown quality score %q", *b.MLQualityScore))
	}
	return nil
}

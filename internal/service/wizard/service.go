package wizard

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

const (
	placeholderImage = "https://picsum.photos/800/600"
	defaultLeadTime  = 20
)

type ListingAdvisor interface {
	SuggestListing(ctx context.Context, req model.ListingSuggestionRequest) (model.ListingSuggestions, error)
}

type QualityInspector interface {
	AnalyzeImage(ctx context.Context, image model.ListingImage) (model.QualityAnalysis, error)
}

type CatalogWriter interface {
	Add(ctx context.Context, batch *model.ProductBatch) error
}

type BatchListedSender interface {
	SendBatchListed(ctx context.Context, batch *model.ProductBatch) error
}

type Options struct {
	DefaultCountry string
	AITimeout      time.Duration
	MaxImageBytes  int
}

type service struct {
	advisor   ListingAdvisor
	inspector QualityInspector
	catalog   CatalogWriter
	sender    BatchListedSender
	opts      Options
	newID     func() string
	now       func() time.Time

	mu      sync.Mutex
	drafts  map[string]*model.ListingDraft
	touched map[string]time.Time
}

func NewWizardService(
	advisor ListingAdvisor,
	inspector QualityInspector,
	catalog CatalogWriter,
	sender BatchListedSender,
	opts Options,
) *service {
	return &service{
		advisor:   advisor,
		inspector: inspector,
		catalog:   catalog,
		sender:    sender,
		opts:      opts,
		newID:     func() string { return uuid.NewString() },
		now:       time.Now,
		drafts:    make(map[string]*model.ListingDraft),
		touched:   make(map[string]time.Time),
	}
}

// Start opens a fresh draft for the client, discarding any previous one.
func (s *service) Start(_ context.Context, clientID string) model.ListingDraft {
	d := &model.ListingDraft{
		Step:         model.WizardStepDetails,
		Country:      s.opts.DefaultCountry,
		MOQ:          50,
		UnitPriceUSD: 20,
		QtyAvailable: 200,
	}

	s.mu.Lock()
	s.drafts[clientID] = d
	s.touched[clientID] = s.now()
	s.mu.Unlock()

	return *d
}

func (s *service) Draft(_ context.Context, clientID string) (model.ListingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.lookupLocked(clientID)
	if !ok {
		return model.ListingDraft{}, model.ErrWizardNotStarted
	}
	return *d, nil
}

func (s *service) Cancel(_ context.Context, clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropLocked(clientID)
}

// Evict drops drafts untouched for longer than ttl.
func (s *service) Evict(ttl time.Duration) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for clientID, at := range s.touched {
		if now.Sub(at) <= ttl {
			continue
		}
		s.dropLocked(clientID)
		evicted++
	}
	return evicted
}

func (s *service) UpdateDetails(_ context.Context, clientID string, upd model.ListingDetailsUpdate) (model.ListingDraft, error) {
	return s.mutate(clientID, model.WizardStepDetails, func(d *model.ListingDraft) error {
		if lo.FromPtr(upd.MOQ) < 0 || lo.FromPtr(upd.UnitPriceUSD) < 0 || lo.FromPtr(upd.QtyAvailable) < 0 {
			return errors.Join(model.ErrValidation, errors.New("moq, price and quantity must be non-negative"))
		}
		assign(&d.Title, upd.Title)
		assign(&d.Category, upd.Category)
		assign(&d.Description, upd.Description)
		assign(&d.Country, upd.Country)
		assign(&d.MOQ, upd.MOQ)
		assign(&d.UnitPriceUSD, upd.UnitPriceUSD)
		assign(&d.QtyAvailable, upd.QtyAvailable)
		return nil
	})
}

// Suggest asks the listing advisor for better copy. Title and description are required.
func (s *service) Suggest(ctx context.Context, clientID string) (model.ListingSuggestions, error) {
	const op = "wizard.service.Suggest"

	d, snap, err := s.snapshot(clientID, model.WizardStepSuggestions)
	if err != nil {
		return model.ListingSuggestions{}, err
	}
	if strings.TrimSpace(snap.Title) == "" || strings.TrimSpace(snap.Description) == "" {
		return model.ListingSuggestions{}, errors.Join(model.ErrValidation,
			errors.New("title and description are required for suggestions"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.AITimeout)
	defer cancel()

	sugg, err := s.advisor.SuggestListing(ctx, model.ListingSuggestionRequest{
		Title:       snap.Title,
		Category:    snap.Category,
		Description: snap.Description,
		Country:     snap.Country,
	})
	if err != nil {
		logger.Error(ctx, "listing suggestions", logger.String("client_id", clientID), logger.ErrorF(err))
		return model.ListingSuggestions{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.commit(clientID, d, model.WizardStepSuggestions, func(d *model.ListingDraft) error {
		d.Suggestions = &sugg
		return nil
	}); err != nil {
		return model.ListingSuggestions{}, fmt.Errorf("%s: %w", op, err)
	}
	return sugg, nil
}

// ApplySuggestion copies a suggested field into the draft.
func (s *service) ApplySuggestion(_ context.Context, clientID string, field model.SuggestionField) (model.ListingDraft, error) {
	return s.mutate(clientID, model.WizardStepSuggestions, func(d *model.ListingDraft) error {
		if d.Suggestions == nil {
			return errors.Join(model.ErrValidation, errors.New("no suggestions to apply"))
		}
		switch field {
		case model.SuggestionFieldTitle:
			d.Title = d.Suggestions.Title
		case model.SuggestionFieldDescription:
			d.Description = d.Suggestions.Description
		default:
			return errors.Join(model.ErrValidation, fmt.Errorf("unknown suggestion field %q", field))
		}
		return nil
	})
}

// UploadImage replaces the draft image. A previous analysis no longer applies and is dropped.
func (s *service) UploadImage(_ context.Context, clientID string, img model.ListingImage) (model.ListingDraft, error) {
	if len(img.Data) == 0 {
		return model.ListingDraft{}, errors.Join(model.ErrValidation, errors.New("image is empty"))
	}
	if s.opts.MaxImageBytes > 0 && len(img.Data) > s.opts.MaxImageBytes {
		return model.ListingDraft{}, errors.Join(model.ErrValidation,
			fmt.Errorf("image exceeds %d bytes", s.opts.MaxImageBytes))
	}
	if !strings.HasPrefix(img.MIMEType, "image/") {
		return model.ListingDraft{}, errors.Join(model.ErrValidation, fmt.Errorf("unsupported content type %q", img.MIMEType))
	}

	return s.mutate(clientID, model.WizardStepImage, func(d *model.ListingDraft) error {
		d.Image = &img
		d.Analysis = nil
		return nil
	})
}

// Analyze grades the uploaded image.
func (s *service) Analyze(ctx context.Context, clientID string) (model.QualityAnalysis, error) {
	const op = "wizard.service.Analyze"

	d, snap, err := s.snapshot(clientID, model.WizardStepAnalysis)
	if err != nil {
		return model.QualityAnalysis{}, err
	}
	if err := imageUploaded(&snap); err != nil {
		return model.QualityAnalysis{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.AITimeout)
	defer cancel()

	res, err := s.inspector.AnalyzeImage(ctx, *snap.Image)
	if err != nil {
		logger.Error(ctx, "image analysis", logger.String("client_id", clientID), logger.ErrorF(err))
		return model.QualityAnalysis{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.commit(clientID, d, model.WizardStepAnalysis, func(d *model.ListingDraft) error {
		if d.Image != snap.Image {
			return fmt.Errorf("%w: image replaced during analysis", model.ErrWizardStep)
		}
		d.Analysis = &res
		return nil
	}); err != nil {
		return model.QualityAnalysis{}, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func (s *service) Next(_ context.Context, clientID string) (model.ListingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.lookupLocked(clientID)
	if !ok {
		return model.ListingDraft{}, model.ErrWizardNotStarted
	}
	step, err := next(d.Step, d)
	if err != nil {
		return *d, err
	}
	d.Step = step
	return *d, nil
}

func (s *service) Back(_ context.Context, clientID string) (model.ListingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.lookupLocked(clientID)
	if !ok {
		return model.ListingDraft{}, model.ErrWizardNotStarted
	}
	step, err := back(d.Step)
	if err != nil {
		return *d, err
	}
	d.Step = step
	return *d, nil
}

// Submit turns the reviewed draft into a catalog batch and announces it.
func (s *service) Submit(ctx context.Context, clientID string) (*model.ProductBatch, error) {
	const op = "wizard.service.Submit"

	d, snap, err := s.take(clientID, model.WizardStepReview)
	if err != nil {
		return nil, err
	}

	batch := s.buildBatch(clientID, snap)
	if err := s.catalog.Add(ctx, batch); err != nil {
		s.restore(clientID, d)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sender.SendBatchListed(ctx, batch); err != nil {
		logger.Error(ctx, "publish batch listed",
			logger.String("batch_id", batch.ID),
			logger.ErrorF(err),
		)
	}

	logger.Info(ctx, "listing submitted",
		logger.String("client_id", clientID),
		logger.String("batch_id", batch.ID),
	)
	return batch, nil
}

func (s *service) buildBatch(clientID string, d model.ListingDraft) *model.ProductBatch {
	id := s.newID()

	images := []string{placeholderImage}
	if d.Image != nil {
		images = []string{dataURL(*d.Image)}
	}

	var score *model.QualityScore
	if d.Analysis != nil {
		score = lo.ToPtr(d.Analysis.Score)
	}

	return &model.ProductBatch{
		ID:           "batch_" + id,
		ProductID:    "prod_" + id,
		SupplierID:   "supp_" + clientID,
		Title:        strings.TrimSpace(d.Title),
		Description:  strings.TrimSpace(d.Description),
		Category:     strings.TrimSpace(d.Category),
		Country:      d.Country,
		UnitPriceUSD: d.UnitPriceUSD,
		MOQ:          d.MOQ,
		QtyAvailable: d.QtyAvailable,
		LeadTimeDays: defaultLeadTime,
		Materials:    []string{"User-defined material"},
		Specs:        map[string]string{"Custom Spec": "Value"},
		Images:       images,
		Status:       model.BatchStatusVerifying,

		MLQualityScore: score,
	}
}

// mutate runs fn on the client's draft when it sits at step.
func (s *service) mutate(clientID string, step model.WizardStep, fn func(d *model.ListingDraft) error) (model.ListingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.lookupLocked(clientID)
	if !ok {
		return model.ListingDraft{}, model.ErrWizardNotStarted
	}
	if d.Step != step {
		return *d, fmt.Errorf("%w: at %s, need %s", model.ErrWizardStep, d.Step, step)
	}
	if err := fn(d); err != nil {
		return *d, err
	}
	return *d, nil
}

// snapshot returns the live draft and a copy for use outside the lock.
func (s *service) snapshot(clientID string, step model.WizardStep) (*model.ListingDraft, model.ListingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.lookupLocked(clientID)
	if !ok {
		return nil, model.ListingDraft{}, model.ErrWizardNotStarted
	}
	if d.Step != step {
		return nil, model.ListingDraft{}, fmt.Errorf("%w: at %s, need %s", model.ErrWizardStep, d.Step, step)
	}
	return d, *d, nil
}

// take detaches the draft from the client. restore reattaches it.
func (s *service) take(clientID string, step model.WizardStep) (*model.ListingDraft, model.ListingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.lookupLocked(clientID)
	if !ok {
		return nil, model.ListingDraft{}, model.ErrWizardNotStarted
	}
	if d.Step != step {
		return nil, model.ListingDraft{}, fmt.Errorf("%w: at %s, need %s", model.ErrWizardStep, d.Step, step)
	}
	s.dropLocked(clientID)
	return d, *d, nil
}

func (s *service) restore(clientID string, d *model.ListingDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[clientID]; !ok {
		s.drafts[clientID] = d
		s.touched[clientID] = s.now()
	}
}

// commit applies fn if the draft was neither replaced nor moved while unlocked.
// fn may reject the draft when the inputs it was computed from have changed.
func (s *service) commit(clientID string, d *model.ListingDraft, step model.WizardStep, fn func(d *model.ListingDraft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drafts[clientID] != d || d.Step != step {
		return fmt.Errorf("%w: draft changed during request", model.ErrWizardStep)
	}
	return fn(d)
}

// lookupLocked returns the client's draft and marks it as used.
func (s *service) lookupLocked(clientID string) (*model.ListingDraft, bool) {
	d, ok := s.drafts[clientID]
	if ok {
		s.touched[clientID] = s.now()
	}
	return d, ok
}

func (s *service) dropLocked(clientID string) {
	delete(s.drafts, clientID)
	delete(s.touched, clientID)
}

func assign[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func dataURL(img model.ListingImage) string {
	return "data:" + img.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

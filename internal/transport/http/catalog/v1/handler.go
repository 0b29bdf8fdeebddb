package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/session"
)

type CatalogService interface {
	Snapshot() []*model.ProductBatch
	Batch(ctx context.Context, id string) (*model.ProductBatch, error)
	Bounds() (model.Bounds, error)
	Countries() []string
	Categories() []string
}

type SupplierDirectory interface {
	Supplier(ctx context.Context, id string) (model.Supplier, error)
}

type SessionStore interface {
	Get(clientID string) *session.Session
}

type SearchBridge interface {
	Search(ctx context.Context, sess *session.Session, query string) session.SearchResult
}

type PreferencesService interface {
	Favorites(ctx context.Context, clientID string) (model.Favorites, error)
	ToggleFavorite(ctx context.Context, clientID, batchID string) (model.Favorites, bool, error)
	Preferences(ctx context.Context, clientID string) (model.Preferences, error)
	UpdatePreferences(ctx context.Context, clientID string, upd model.PreferencesUpdate) (model.Preferences, error)
}

type WizardService interface {
	Start(ctx context.Context, clientID string) model.ListingDraft
	Draft(ctx context.Context, clientID string) (model.ListingDraft, error)
	Cancel(ctx context.Context, clientID string)
	UpdateDetails(ctx context.Context, clientID string, upd model.ListingDetailsUpdate) (model.ListingDraft, error)
	Suggest(ctx context.Context, clientID string) (model.ListingSuggestions, error)
	ApplySuggestion(ctx context.Context, clientID string, field model.SuggestionField) (model.ListingDraft, error)
	UploadImage(ctx context.Context, clientID string, img model.ListingImage) (model.ListingDraft, error)
	Analyze(ctx context.Context, clientID string) (model.QualityAnalysis, error)
	Next(ctx context.Context, clientID string) (model.ListingDraft, error)
	Back(ctx context.Context, clientID string) (model.ListingDraft, error)
	Submit(ctx context.Context, clientID string) (*model.ProductBatch, error)
}

type AssistantService interface {
	Chat(ctx context.Context, clientID, message string) (model.ChatReply, error)
}

type LandedCostEstimator func(batch *model.ProductBatch, quantity int64, dest model.Destination) (model.LandedCost, error)

type Services struct {
	Catalog     CatalogService
	Suppliers   SupplierDirectory
	Sessions    SessionStore
	Search      SearchBridge
	Preferences PreferencesService
	Wizard      WizardService
	Assistant   AssistantService
	LandedCost  LandedCostEstimator
}

type handler struct {
	catalog    CatalogService
	suppliers  SupplierDirectory
	sessions   SessionStore
	search     SearchBridge
	prefs      PreferencesService
	wizard     WizardService
	assistant  AssistantService
	landedCost LandedCostEstimator
	maxImage   int64
}

func NewCatalogHandler(svc Services, maxImageBytes int64) *handler {
	return &handler{
		catalog:    svc.Catalog,
		suppliers:  svc.Suppliers,
		sessions:   svc.Sessions,
		search:     svc.Search,
		prefs:      svc.Preferences,
		wizard:     svc.Wizard,
		assistant:  svc.Assistant,
		landedCost: svc.LandedCost,
		maxImage:   maxImageBytes,
	}
}

// Routes mounts the v1 API on r. Every route runs with a resolved client id.
func (h *handler) Routes(r chi.Router) {
	r.Use(ClientID)

	r.Get("/batches", h.ListBatches)
	r.Get("/batches/{id}", h.GetBatch)
	r.Post("/batches/{id}/landed-cost", h.EstimateLandedCost)
	r.Get("/bounds", h.GetBounds)
	r.Get("/countries", h.ListCountries)
	r.Get("/categories", h.ListCategories)
	r.Get("/analytics", h.GetAnalytics)
	r.Get("/suppliers/{id}", h.GetSupplier)

	r.Get("/filters", h.GetFilters)
	r.Put("/filters", h.UpdateFilters)
	r.Post("/filters/reset", h.ResetFilters)
	r.Post("/search", h.Search)

	r.Get("/favorites", h.ListFavorites)
	r.Post("/favorites/{id}/toggle", h.ToggleFavorite)
	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.UpdateSettings)

	r.Route("/wizard", func(r chi.Router) {
		r.Post("/", h.StartWizard)
		r.Get("/", h.GetWizard)
		r.Delete("/", h.CancelWizard)
		r.Put("/details", h.UpdateWizardDetails)
		r.Post("/suggestions", h.SuggestListing)
		r.Post("/suggestions/apply", h.ApplySuggestion)
		r.Post("/image", h.UploadWizardImage)
		r.Post("/analysis", h.AnalyzeWizardImage)
		r.Post("/next", h.NextWizardStep)
		r.Post("/back", h.PrevWizardStep)
		r.Post("/submit", h.SubmitWizard)
	})

	r.Post("/chat", h.Chat)
}

func (h *handler) session(r *http.Request) *session.Session {
	return h.sessions.Get(ClientIDFrom(r.Context()))
}

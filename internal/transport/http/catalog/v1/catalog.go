package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/catalog"
)

// ListBatches returns the catalog filtered by the caller's current filter state.
func (h *handler) ListBatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := h.session(r)
	state := sess.State()

	var favorites model.Favorites
	if state.ViewMode == model.ViewModeFavorites {
		favs, err := h.prefs.Favorites(ctx, sess.ClientID())
		if err != nil {
			writeError(w, r, err)
			return
		}
		favorites = favs
	}

	visible := catalog.Filter(h.catalog.Snapshot(), state, favorites)
	bounds, err := h.catalog.Bounds()

	writeJSON(w, http.StatusOK, listBatchesResponse{
		Batches: batchesToDTO(visible),
		Total:   len(visible),
		Filters: filterStateToDTO(state),
		Bounds:  boundsToDTO(bounds, errors.Is(err, model.ErrEmptyCatalog)),
		Busy:    sess.Busy(),
	})
}

func (h *handler) GetBatch(w http.ResponseWriter, r *http.Request) {
	b, err := h.catalog.Batch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, batchToDTO(b))
}

func (h *handler) EstimateLandedCost(w http.ResponseWriter, r *http.Request) {
	var req landedCostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	b, err := h.catalog.Batch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	cost, err := h.landedCost(b, req.Quantity, model.Destination(req.Destination))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, landedCostToDTO(cost))
}

func (h *handler) GetBounds(w http.ResponseWriter, r *http.Request) {
	bounds, err := h.catalog.Bounds()
	writeJSON(w, http.StatusOK, boundsToDTO(bounds, errors.Is(err, model.ErrEmptyCatalog)))
}

func (h *handler) ListCountries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"countries": h.catalog.Countries()})
}

func (h *handler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": h.catalog.Categories()})
}

// GetAnalytics aggregates the whole catalog, ignoring the caller's filters.
func (h *handler) GetAnalytics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, analyticsToDTO(catalog.Analytics(h.catalog.Snapshot())))
}

func (h *handler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	s, err := h.suppliers.Supplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, supplierToDTO(s))
}

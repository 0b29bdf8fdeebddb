package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/session"
)

const maxQueryLength = 500

func (h *handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	writeJSON(w, http.StatusOK, filtersResponse{
		Filters: filterStateToDTO(sess.State()),
		Busy:    sess.Busy(),
	})
}

// UpdateFilters applies the fields present in the body. Absent fields keep
// their current value.
func (h *handler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var req updateFiltersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validateFilters(req); err != nil {
		writeError(w, r, err)
		return
	}

	sess := h.session(r)
	applyFilters(sess, req)

	writeJSON(w, http.StatusOK, filtersResponse{
		Filters: filterStateToDTO(sess.State()),
		Busy:    sess.Busy(),
	})
}

func (h *handler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	writeJSON(w, http.StatusOK, filtersResponse{
		Filters: filterStateToDTO(sess.Reset()),
		Busy:    sess.Busy(),
	})
}

// Search runs the natural-language query through the interpreter. A response
// with stale set means a newer search from the same client took precedence.
func (h *handler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if len(req.Query) > maxQueryLength {
		writeError(w, r, errors.Join(model.ErrValidation, fmt.Errorf("query exceeds %d bytes", maxQueryLength)))
		return
	}

	res := h.search.Search(r.Context(), h.session(r), req.Query)
	writeJSON(w, http.StatusOK, searchResponse{
		Seq:      res.Seq,
		Filters:  filterStateToDTO(res.State),
		Stale:    res.Stale,
		Fallback: res.Fallback,
	})
}

func validateFilters(req updateFiltersRequest) error {
	if req.PriceRange != nil {
		for _, v := range []float64{req.PriceRange.Min, req.PriceRange.Max} {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return errors.Join(model.ErrValidation, errors.New("price range must be non-negative"))
			}
		}
	}
	if req.MOQRange != nil && (req.MOQRange.Min < 0 || req.MOQRange.Max < 0) {
		return errors.Join(model.ErrValidation, errors.New("moq range must be non-negative"))
	}
	if req.ViewMode != nil && !model.ViewMode(*req.ViewMode).Valid() {
		return errors.Join(model.ErrValidation, fmt.Errorf("unknown view mode %q", *req.ViewMode))
	}
	if req.ToggleCountry != nil && strings.TrimSpace(*req.ToggleCountry) == "" {
		return errors.Join(model.ErrValidation, errors.New("toggleCountry must be non-empty"))
	}
	return nil
}

func applyFilters(sess *session.Session, req updateFiltersRequest) {
	if req.SearchTerm != nil {
		sess.SetSearchTerm(*req.SearchTerm)
	}
	if req.PriceRange != nil {
		sess.SetPriceRange(model.Range[float64]{Min: req.PriceRange.Min, Max: req.PriceRange.Max})
	}
	if req.MOQRange != nil {
		sess.SetMOQRange(model.Range[int64]{Min: req.MOQRange.Min, Max: req.MOQRange.Max})
	}
	if req.Countries != nil {
		sess.SetCountries(*req.Countries)
	}
	if req.ToggleCountry != nil {
		sess.ToggleCountry(strings.TrimSpace(*req.ToggleCountry))
	}
	if req.ViewMode != nil {
		sess.SetViewMode(model.ViewMode(*req.ViewMode))
	}
}

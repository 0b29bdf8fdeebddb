package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

func (h *handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.prefs.Favorites(r.Context(), ClientIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favoritesResponse{Favorites: favs})
}

func (h *handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	favs, isFav, err := h.prefs.ToggleFavorite(r.Context(), ClientIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favoritesResponse{Favorites: favs, IsFavorite: &isFav})
}

func (h *handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.prefs.Preferences(r.Context(), ClientIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preferencesToDTO(prefs))
}

func (h *handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	upd := model.PreferencesUpdate{SoundEnabled: req.SoundEnabled}
	if req.Theme != nil {
		theme := model.Theme(*req.Theme)
		if !theme.Valid() {
			writeError(w, r, errors.Join(model.ErrValidation, fmt.Errorf("unknown theme %q", *req.Theme)))
			return
		}
		upd.Theme = &theme
	}

	prefs, err := h.prefs.UpdatePreferences(r.Context(), ClientIDFrom(r.Context()), upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preferencesToDTO(prefs))
}

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

const imageFormField = "image"

func (h *handler) StartWizard(w http.ResponseWriter, r *http.Request) {
	d := h.wizard.Start(r.Context(), ClientIDFrom(r.Context()))
	writeJSON(w, http.StatusCreated, draftToDTO(d))
}

func (h *handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	h.respondDraft(w, r)(h.wizard.Draft(r.Context(), ClientIDFrom(r.Context())))
}

func (h *handler) CancelWizard(w http.ResponseWriter, r *http.Request) {
	h.wizard.Cancel(r.Context(), ClientIDFrom(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) UpdateWizardDetails(w http.ResponseWriter, r *http.Request) {
	var req draftDetailsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.respondDraft(w, r)(h.wizard.UpdateDetails(r.Context(), ClientIDFrom(r.Context()), detailsFromDTO(req)))
}

func (h *handler) SuggestListing(w http.ResponseWriter, r *http.Request) {
	s, err := h.wizard.Suggest(r.Context(), ClientIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestionsToDTO(s))
}

func (h *handler) ApplySuggestion(w http.ResponseWriter, r *http.Request) {
	var req applySuggestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.respondDraft(w, r)(h.wizard.ApplySuggestion(r.Context(), ClientIDFrom(r.Context()), model.SuggestionField(req.Field)))
}

// UploadWizardImage accepts a multipart form with the picture in the "image" field.
func (h *handler) UploadWizardImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxImage+maxBodyBytes)
	if err := r.ParseMultipartForm(h.maxImage); err != nil {
		writeError(w, r, errors.Join(model.ErrValidation, err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		writeError(w, r, errors.Join(model.ErrValidation, fmt.Errorf("form field %q: %w", imageFormField, err)))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, errors.Join(model.ErrValidation, err))
		return
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(data)
	}

	h.respondDraft(w, r)(h.wizard.UploadImage(r.Context(), ClientIDFrom(r.Context()), model.ListingImage{
		Data:     data,
		MIMEType: mime,
	}))
}

func (h *handler) AnalyzeWizardImage(w http.ResponseWriter, r *http.Request) {
	a, err := h.wizard.Analyze(r.Context(), ClientIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analysisToDTO(a))
}

func (h *handler) NextWizardStep(w http.ResponseWriter, r *http.Request) {
	h.respondDraft(w, r)(h.wizard.Next(r.Context(), ClientIDFrom(r.Context())))
}

func (h *handler) PrevWizardStep(w http.ResponseWriter, r *http.Request) {
	h.respondDraft(w, r)(h.wizard.Back(r.Context(), ClientIDFrom(r.Context())))
}

func (h *handler) SubmitWizard(w http.ResponseWriter, r *http.Request) {
	b, err := h.wizard.Submit(r.Context(), ClientIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, batchToDTO(b))
}

func (h *handler) respondDraft(w http.ResponseWriter, r *http.Request) func(model.ListingDraft, error) {
	return func(d model.ListingDraft, err error) {
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, draftToDTO(d))
	}
}

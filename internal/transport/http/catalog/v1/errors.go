package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrBatchNotFound),
		errors.Is(err, model.ErrSupplierNotFound),
		errors.Is(err, model.ErrWizardNotStarted):
		return http.StatusNotFound
	case errors.Is(err, model.ErrBatchAlreadyExists),
		errors.Is(err, model.ErrWizardStep):
		return http.StatusConflict
	case errors.Is(err, model.ErrBadGateway):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrAIUnavailable),
		errors.Is(err, model.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFromError(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.String("client_id", ClientIDFrom(r.Context())),
			logger.ErrorF(err),
		)
		msg = http.StatusText(code)
	}
	writeJSON(w, code, errorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(context.Background(), "failed to encode response", logger.ErrorF(err))
	}
}

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Join(model.ErrValidation, err)
	}
	return nil
}

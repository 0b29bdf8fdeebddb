package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	ClientIDHeader    = "X-Client-ID"
	maxClientIDLength = 128
)

type clientIDKey struct{}

// ClientID resolves the caller's identity from the X-Client-ID header and
// issues a fresh one when the header is absent.
func ClientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(ClientIDHeader))
		switch {
		case id == "":
			id = uuid.NewString()
		case len(id) > maxClientIDLength:
			writeJSON(w, http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "client id too long"})
			return
		}

		w.Header().Set(ClientIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), clientIDKey{}, id)))
	})
}

func ClientIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey{}).(string)
	return id
}

package http

import "net/http"

func (h *handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := h.assistant.Chat(r.Context(), ClientIDFrom(r.Context()), req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply.Text})
}

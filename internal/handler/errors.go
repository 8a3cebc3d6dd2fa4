package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const msgFailure = "Something went wrong, please try again later."

// ErrorResponse is the JSON body of a failed ops request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *Handlers) reply(ctx context.Context, ev Event, text string) error {
	return h.Sender.SendText(ctx, ev.ChatID, text)
}

func (h *Handlers) replyFailure(ctx context.Context, ev Event) {
	if err := h.Sender.SendText(ctx, ev.ChatID, msgFailure); err != nil {
		h.Log.Warn("failure reply not delivered", zap.Int64("chat_id", ev.ChatID), zap.Error(err))
	}
}

package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

const maxMessageLen = 4000

// ChatClient keeps one conversation per client. A failed turn discards the
// conversation it ran on.
type ChatClient interface {
	SendChat(ctx context.Context, clientID, message string) (string, error)
}

type service struct {
	client  ChatClient
	timeout time.Duration
}

func NewAssistantService(client ChatClient, timeout time.Duration) *service {
	return &service{client: client, timeout: timeout}
}

// Chat sends one user turn to the client's SKU-Bot conversation.
func (s *service) Chat(ctx context.Context, clientID, message string) (model.ChatReply, error) {
	const op = "assistant.service.Chat"

	message = strings.TrimSpace(message)
	switch {
	case message == "":
		return model.ChatReply{}, errors.Join(model.ErrValidation, errors.New("message must be non-empty"))
	case len(message) > maxMessageLen:
		return model.ChatReply{}, errors.Join(model.ErrValidation,
			fmt.Errorf("message exceeds %d bytes", maxMessageLen))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.SendChat(ctx, clientID, message)
	if err != nil {
		logger.Error(ctx, "chat turn failed",
			logger.String("client_id", clientID),
			logger.ErrorF(err),
		)
		if errors.Is(err, model.ErrAIUnavailable) {
			return model.ChatReply{}, fmt.Errorf("%s: %w", op, err)
		}
		return model.ChatReply{}, fmt.Errorf("%s: %w", op, errors.Join(model.ErrBadGateway, err))
	}

	return model.ChatReply{Text: text}, nil
}

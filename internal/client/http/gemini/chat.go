package gemini

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

const chatSystemInstruction = "You are a helpful assistant for the Borderless SKU Lab, a B2B marketplace for handcrafted goods. " +
	"Your name is 'SKU-Bot'. You can answer questions about the platform, sourcing, logistics, and help users find products. " +
	"Be concise and professional, with a slightly futuristic, 'cyberpunk' tone. Use markdown for formatting."

// conversation is the part of *genai.Chat a turn needs. SendMessage mutates
// the chat history and must not run concurrently on one conversation.
type conversation interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// chatSession is one client's conversation. turnMu serializes its turns;
// the remaining fields are guarded by client.mu.
type chatSession struct {
	turnMu sync.Mutex
	conv   conversation
	closed bool

	turns    int
	lastUsed time.Time
}

// SendChat continues the client's conversation, opening one on first use.
// Turns of one client run one at a time. A failed turn discards the
// conversation so the next message starts clean.
func (c *client) SendChat(ctx context.Context, clientID, message string) (string, error) {
	const op = "gemini.SendChat"

	sess, err := c.acquire(ctx, clientID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer c.release(sess)

	start := time.Now()
	resp, err := sess.conv.SendMessage(ctx, genai.Part{Text: message})
	c.observe("chat", err, start)
	if err != nil {
		c.discard(clientID, sess)
		return "", fmt.Errorf("%s: %w", op, upstream(err))
	}
	return resp.Text(), nil
}

// EvictChats drops conversations idle for longer than ttl. Conversations
// with a turn in progress or waiting are kept.
func (c *client) EvictChats(ttl time.Duration) int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for clientID, sess := range c.chats {
		if sess.turns > 0 || now.Sub(sess.lastUsed) <= ttl {
			continue
		}
		delete(c.chats, clientID)
		evicted++
	}
	return evicted
}

// acquire returns the client's live conversation with its turn lock held.
func (c *client) acquire(ctx context.Context, clientID string) (*chatSession, error) {
	for {
		sess, err := c.session(ctx, clientID)
		if err != nil {
			return nil, err
		}

		sess.turnMu.Lock()

		c.mu.Lock()
		closed := sess.closed
		if closed {
			sess.turns--
		}
		c.mu.Unlock()

		if !closed {
			return sess, nil
		}
		// Discarded by the turn ahead of us; start over on a fresh one.
		sess.turnMu.Unlock()
	}
}

func (c *client) release(sess *chatSession) {
	c.mu.Lock()
	sess.turns--
	sess.lastUsed = c.now()
	c.mu.Unlock()

	sess.turnMu.Unlock()
}

// discard removes sess unless it was already replaced.
func (c *client) discard(clientID string, sess *chatSession) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess.closed = true
	if c.chats[clientID] == sess {
		delete(c.chats, clientID)
	}
}

func (c *client) session(ctx context.Context, clientID string) (*chatSession, error) {
	if c.openChat == nil {
		return nil, model.ErrAIUnavailable
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	sess, ok := c.chats[clientID]
	if !ok {
		conv, err := c.openChat(ctx)
		if err != nil {
			return nil, errors.Join(model.ErrBadGateway, err)
		}
		sess = &chatSession{conv: conv}
		c.chats[clientID] = sess
	}
	sess.turns++
	sess.lastUsed = c.now()
	return sess, nil
}

func (c *client) openGenaiChat(ctx context.Context) (conversation, error) {
	return c.genai.Chats.Create(ctx, c.opts.ChatModel, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemInstruction, genai.RoleUser),
	}, nil)
}

func wrapDecode(err error) error {
	return errors.Join(model.ErrBadGateway, err)
}

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

type Metrics interface {
	ObserveAICall(operation string, err error, took time.Duration)
}

type Options struct {
	APIKey      string
	FastModel   string
	ChatModel   string
	Temperature float32
}

type client struct {
	genai   *genai.Client
	opts    Options
	metrics Metrics

	openChat func(ctx context.Context) (conversation, error)
	now      func() time.Time

	mu    sync.Mutex
	chats map[string]*chatSession
}

// NewClient returns a client that reports model.ErrAIUnavailable on every
// call when opts.APIKey is empty.
func NewClient(ctx context.Context, opts Options, metrics Metrics) (*client, error) {
	c := &client{
		opts:    opts,
		metrics: metrics,
		now:     time.Now,
		chats:   make(map[string]*chatSession),
	}
	if opts.APIKey == "" {
		return c, nil
	}

	g, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini.NewClient: %w", err)
	}
	c.genai = g
	c.openChat = c.openGenaiChat
	return c, nil
}

func (c *client) Available() bool { return c.genai != nil }

// generate runs a single structured request and returns the raw reply text.
func (c *client) generate(
	ctx context.Context,
	operation string,
	contents []*genai.Content,
	schema *genai.Schema,
) (string, error) {
	if c.genai == nil {
		return "", model.ErrAIUnavailable
	}

	start := time.Now()
	resp, err := c.genai.Models.GenerateContent(ctx, c.opts.FastModel, contents, &genai.GenerateContentConfig{
		Temperature:      &c.opts.Temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	c.observe(operation, err, start)
	if err != nil {
		return "", upstream(err)
	}
	return resp.Text(), nil
}

func (c *client) observe(operation string, err error, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveAICall(operation, err, time.Since(start))
	}
}

func upstream(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	return errors.Join(model.ErrBadGateway, err)
}

package kafka

import (
	"context"
)

// HeaderEventType names the event carried by a record. Topics may be shared
// by several event types, consumers select theirs by this header.
const HeaderEventType = "event-type"

type (
	Middleware     func(next MessageHandler) MessageHandler
	MessageHandler func(ctx context.Context, msg Message) error
)

type Consumer interface {
	Consume(ctx context.Context, handler MessageHandler) error
}

type Producer interface {
	Send(ctx context.Context, key, value []byte, headers ...Header) error
}

// Chain wraps handler so that the first middleware runs outermost.
func Chain(handler MessageHandler, middlewares ...Middleware) MessageHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

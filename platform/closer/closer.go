package closer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type noopLogger struct{}

func (noopLogger) Info(context.Context, string, ...zap.Field)  {}
func (noopLogger) Error(context.Context, string, ...zap.Field) {}

// Closer runs registered shutdown funcs in reverse order of registration.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	done   chan struct{}
	funcs  []namedFunc
	logger Logger
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

var globalCloser = New()

func AddNamed(name string, f func(context.Context) error) { globalCloser.AddNamed(name, f) }
func Add(f ...func(context.Context) error)                 { globalCloser.Add(f...) }
func CloseAll(ctx context.Context) error                   { return globalCloser.CloseAll(ctx) }
func SetLogger(l Logger)                                   { globalCloser.SetLogger(l) }

// Configure closes everything when one of the signals arrives.
func Configure(signals ...os.Signal) {
	go globalCloser.handleSignals(signals...)
}

func New() *Closer {
	return &Closer{
		done:   make(chan struct{}),
		logger: noopLogger{},
	}
}

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) Add(f ...func(context.Context) error) {
	for _, fn := range f {
		c.AddNamed("func", fn)
	}
}

func (c *Closer) AddNamed(name string, f func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: f})
}

func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		defer close(c.done)

		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		logger := c.logger
		c.mu.Unlock()

		if len(funcs) == 0 {
			logger.Info(ctx, "🧹 nothing to close")
			return
		}

		logger.Info(ctx, "🚦 graceful shutdown started")

		errs := make([]error, 0, len(funcs))
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			start := time.Now()
			logger.Info(ctx, "🧩 closing", zap.String("name", f.name))

			err := safeCall(ctx, f)
			if err != nil {
				logger.Error(ctx, "❌ close failed", zap.String("name", f.name), zap.Error(err))
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}
			logger.Info(ctx, "✅ closed",
				zap.String("name", f.name),
				zap.Duration("duration", time.Since(start)),
			)
		}

		result = errors.Join(errs...)
	})

	return result
}

func (c *Closer) handleSignals(signals ...os.Signal) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)
	defer signal.Stop(ch)

	select {
	case <-ch:
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := c.CloseAll(ctx); err != nil {
			c.logger.Error(ctx, "❌ close on signal", zap.Error(err))
		}
	case <-c.done:
	}
}

func safeCall(ctx context.Context, f namedFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic recovered: %v", r)
		}
	}()
	return f.fn(ctx)
}

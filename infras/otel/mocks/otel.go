package mocks

import (
	"context"
	"sync"

	"hotel/infras/otel"
)

type otelImpl struct {
}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

// Recorder is an otel.Otel that hands out recording scopes keyed by scope name.
type Recorder struct {
	mu     sync.Mutex
	scopes map[string]*Scope
}

func NewRecorder() *Recorder {
	return &Recorder{scopes: map[string]*Scope{}}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()

	scope := NewScope()
	r.scopes[name] = scope

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the last scope opened under name, or nil.
func (r *Recorder) Scope(name string) *Scope {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.scopes[name]
}

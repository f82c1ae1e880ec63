package mocks

import (
	"sync"

	"hotel/infras/otel"
)

// Scope is an in-memory otel.Scope. It keeps what was traced so tests can inspect it.
type Scope struct {
	mu         sync.Mutex
	Errors     []error
	Events     []string
	Attributes map[string]any
	Ended      bool
}

var _ otel.Scope = (*Scope)(nil)

func NewScope() *Scope {
	return &Scope{Attributes: map[string]any{}}
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Scope) TraceError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	s.TraceError(err)
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

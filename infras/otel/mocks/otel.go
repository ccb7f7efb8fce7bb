// Package mocks provides an otel.Otel for tests that keeps spans in memory.
package mocks

import (
	"concierge/infras/otel"
	"context"
	"sync"
)

// Recorder remembers every span name it opened and every error traced on them.
type Recorder struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

// NewOtel is a Recorder for tests that never look at it.
func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.spans = append(r.spans, spanName)
	r.mu.Unlock()

	return ctx, &scope{recorder: r}
}

func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.spans...)
}

func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

type scope struct {
	recorder *Recorder
}

func (s *scope) TraceError(err error) {
	if err == nil {
		return
	}

	s.recorder.mu.Lock()
	s.recorder.errors = append(s.recorder.errors, err)
	s.recorder.mu.Unlock()
}

func (s *scope) TraceIfError(err *error) {
	if err != nil {
		s.TraceError(*err)
	}
}

func (*scope) End() {}
func (*scope) AddEvent(string) {}
func (*scope) SetAttribute(string, any) {}
func (*scope) SetAttributes(map[string]any) {}

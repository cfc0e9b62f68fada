// Package registry maps topic ids to their generators and dispatches
// generation requests.
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
	"github.com/abhisek/examforge/internal/topics"
)

// ErrUnknownTopic is returned by the strict generation path for a topic id
// that has no generator.
var ErrUnknownTopic = errors.New("unknown topic")

var errNilQuestion = errors.New("generator returned no question")

// Request describes one generation call.
type Request struct {
	Topic   problemgen.TopicID
	Level   int
	Weights problemgen.Weights

	// Rand is the randomness source. Nil draws a fresh unseeded source.
	Rand *rng.Rand
}

// Registry is a read-only table of generators. It is safe for concurrent
// use as long as each caller brings its own Rand.
type Registry struct {
	entries []problemgen.Entry
	byID    map[problemgen.TopicID]int
	logger  *slog.Logger
}

// New builds a registry from entries. Entries without a generator and
// duplicate ids are dropped with a warning rather than failing startup.
func New(entries []problemgen.Entry, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	reg := &Registry{
		byID:   make(map[problemgen.TopicID]int, len(entries)),
		logger: logger,
	}
	for _, e := range entries {
		switch {
		case e.ID == "":
			logger.Warn("registry: dropping entry without id", "name", e.Name)
			continue
		case e.Generate == nil:
			logger.Warn("registry: dropping entry without generator", "topic", e.ID)
			continue
		}
		if _, dup := reg.byID[e.ID]; dup {
			logger.Warn("registry: dropping duplicate entry", "topic", e.ID)
			continue
		}
		reg.byID[e.ID] = len(reg.entries)
		reg.entries = append(reg.entries, e)
	}
	logger.Debug("registry: built", "topics", len(reg.entries))
	return reg
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry over the full topic catalogue, built once.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New(topics.Catalog(), slog.Default())
	})
	return defaultReg
}

// Has reports whether id has a generator.
func (r *Registry) Has(id problemgen.TopicID) bool {
	_, ok := r.byID[id]
	return ok
}

// Entry returns the catalogue entry for id.
func (r *Registry) Entry(id problemgen.TopicID) (problemgen.Entry, bool) {
	i, ok := r.byID[id]
	if !ok {
		return problemgen.Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of the registered entries in catalogue order.
func (r *Registry) Entries() []problemgen.Entry {
	out := make([]problemgen.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Topics returns the registered topic ids in catalogue order.
func (r *Registry) Topics() []problemgen.TopicID {
	out := make([]problemgen.TopicID, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.ID
	}
	return out
}

// Generate produces one question. An unknown topic yields an error wrapping
// ErrUnknownTopic. A generator error or panic yields *problemgen.GeneratorFault.
// Out-of-range levels are clamped to the topic's range.
func (r *Registry) Generate(req Request) (*problemgen.Question, error) {
	e, ok := r.Entry(req.Topic)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, req.Topic)
	}
	src := req.Rand
	if src == nil {
		src = rng.NewUnseeded()
	}
	level := e.ClampLevel(req.Level)
	if level != req.Level {
		r.logger.Debug("registry: level clamped", "topic", e.ID, "requested", req.Level, "level", level)
	}
	return invoke(e, src, level, req.Weights)
}

func invoke(e problemgen.Entry, src *rng.Rand, level int, w problemgen.Weights) (q *problemgen.Question, err error) {
	defer func() {
		if p := recover(); p != nil {
			q, err = nil, &problemgen.GeneratorFault{Topic: e.ID, Level: level, Err: fmt.Errorf("panic: %v", p)}
		}
	}()
	q, err = e.Generate(src, level, w)
	if err != nil {
		return nil, &problemgen.GeneratorFault{Topic: e.ID, Level: level, Err: err}
	}
	if q == nil {
		return nil, &problemgen.GeneratorFault{Topic: e.ID, Level: level, Err: errNilQuestion}
	}
	return q, nil
}

// GenerateN produces count independent questions from the same request.
// Duplicates are possible. It stops at the first failure.
func (r *Registry) GenerateN(req Request, count int) ([]*problemgen.Question, error) {
	if count < 0 {
		return nil, fmt.Errorf("registry: negative count %d", count)
	}
	if req.Rand == nil {
		// One source for the whole batch so a single seed covers it.
		req.Rand = rng.NewUnseeded()
	}
	out := make([]*problemgen.Question, 0, count)
	for i := 0; i < count; i++ {
		q, err := r.Generate(req)
		if err != nil {
			return out, err
		}
		out = append(out, q)
	}
	return out, nil
}

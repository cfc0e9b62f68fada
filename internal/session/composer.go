package session

import (
	"errors"
	"log/slog"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/registry"
	"github.com/abhisek/examforge/internal/rng"
)

// Placeholder texts substituted for questions that could not be generated.
const (
	ComingSoonText = "Coming soon"
	FaultText      = "Error generating question"
)

// DefaultLevel is used for topics without an explicit level.
const DefaultLevel = 1

// Composer builds practice sets on top of a registry. Unlike the registry
// it never fails: faults become placeholder questions.
type Composer struct {
	reg    *registry.Registry
	logger *slog.Logger
}

// NewComposer returns a Composer over reg.
func NewComposer(reg *registry.Registry, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{reg: reg, logger: logger}
}

// GenerateForTopic returns a question for req. A missing generator or a
// generator fault yields a placeholder. The returned question always
// carries req.Topic.
func (c *Composer) GenerateForTopic(req registry.Request) *problemgen.Question {
	q, err := c.reg.Generate(req)
	switch {
	case errors.Is(err, registry.ErrUnknownTopic):
		c.logger.Warn("session: no generator for topic", "topic", req.Topic)
		return placeholder(req.Topic, req.Level, "placeholder", ComingSoonText)
	case err != nil:
		c.logger.Error("session: generator fault", "topic", req.Topic, "level", req.Level, "err", err)
		return placeholder(req.Topic, req.Level, "error", FaultText)
	}
	q.Topic = req.Topic
	return q
}

// GenerateMixed assigns topics round-robin across total questions, then
// shuffles the set so topics interleave. Levels default to DefaultLevel.
// An empty topic list yields an empty set.
func (c *Composer) GenerateMixed(r *rng.Rand, topicIDs []problemgen.TopicID, total int, levels map[problemgen.TopicID]int) []*problemgen.Question {
	if len(topicIDs) == 0 || total <= 0 {
		return []*problemgen.Question{}
	}
	if r == nil {
		r = rng.NewUnseeded()
	}

	out := make([]*problemgen.Question, 0, total)
	for i := 0; i < total; i++ {
		topic := topicIDs[i%len(topicIDs)]
		level, ok := levels[topic]
		if !ok {
			level = DefaultLevel
		}
		out = append(out, c.GenerateForTopic(registry.Request{Topic: topic, Level: level, Rand: r}))
	}
	rng.Shuffle(r, out)

	c.logger.Debug("session: mixed set composed", "topics", len(topicIDs), "count", total, "seed", r.Seed())
	return out
}

// IsPlaceholder reports whether q stands in for a question that could not
// be generated.
func IsPlaceholder(q *problemgen.Question) bool {
	return q.Text == ComingSoonText || q.Text == FaultText
}

func placeholder(topic problemgen.TopicID, level int, suffix, text string) *problemgen.Question {
	return &problemgen.Question{
		ID:         string(topic) + "-" + suffix,
		Topic:      topic,
		Text:       text,
		Answer:     "0",
		Difficulty: max(level, 1),
	}
}

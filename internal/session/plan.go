package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/examforge/internal/problemgen"
)

// PlanTopic is a single topic entry in a practice plan. A zero Level means
// DefaultLevel.
type PlanTopic struct {
	ID    problemgen.TopicID `yaml:"id"`
	Level int                `yaml:"level,omitempty"`
}

// Plan is a saved mixed practice set definition.
//
//	name: mock paper warm-up
//	count: 12
//	seed: 42
//	topics:
//	  - id: fraction-addition
//	    level: 2
//	  - id: pythagoras
type Plan struct {
	Name   string      `yaml:"name,omitempty"`
	Count  int         `yaml:"count"`
	Seed   *uint64     `yaml:"seed,omitempty"`
	Topics []PlanTopic `yaml:"topics"`
}

// DefaultPlanCount is used when a plan omits count.
const DefaultPlanCount = 10

var errPlanNoTopics = errors.New("plan lists no topics")

// ParsePlan decodes and checks a YAML plan.
func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	if p.Count == 0 {
		p.Count = DefaultPlanCount
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPlan reads a YAML plan from path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}
	p, err := ParsePlan(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// WritePlan marshals p to YAML at path, creating parent directories.
func WritePlan(path string, p *Plan) error {
	if err := p.validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create plan dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write plan %s: %w", path, err)
	}
	return nil
}

func (p *Plan) validate() error {
	if len(p.Topics) == 0 {
		return errPlanNoTopics
	}
	if p.Count < 0 {
		return fmt.Errorf("plan count %d is negative", p.Count)
	}
	for i, t := range p.Topics {
		if t.ID == "" {
			return fmt.Errorf("plan topic %d has no id", i)
		}
		if t.Level < 0 {
			return fmt.Errorf("plan topic %q has negative level %d", t.ID, t.Level)
		}
	}
	return nil
}

// TopicIDs returns the plan's topics in order.
func (p *Plan) TopicIDs() []problemgen.TopicID {
	ids := make([]problemgen.TopicID, len(p.Topics))
	for i, t := range p.Topics {
		ids[i] = t.ID
	}
	return ids
}

// Levels returns the explicit per-topic levels.
func (p *Plan) Levels() map[problemgen.TopicID]int {
	levels := make(map[problemgen.TopicID]int, len(p.Topics))
	for _, t := range p.Topics {
		if t.Level > 0 {
			levels[t.ID] = t.Level
		}
	}
	return levels
}

package registry

import (
	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
)

// Failure records one draw that could not be generated or failed validation.
type Failure struct {
	Topic    problemgen.TopicID
	Level    int
	Draw     int
	Question *problemgen.Question
	Err      error
}

// Report summarises a self-test sweep.
type Report struct {
	Seed      uint64
	Generated int
	Failures  []Failure
}

// OK reports whether the sweep found no failures.
func (rep Report) OK() bool {
	return len(rep.Failures) == 0
}

// SelfTest draws questions for every topic at every level and runs each
// through validators. All draws share src, so a failing sweep can be
// replayed from Report.Seed.
func (r *Registry) SelfTest(src *rng.Rand, draws int, validators []problemgen.Validator) Report {
	if src == nil {
		src = rng.NewUnseeded()
	}
	rep := Report{Seed: src.Seed()}
	for _, e := range r.entries {
		for level := 1; level <= max(e.MaxLevel, 1); level++ {
			for i := 0; i < draws; i++ {
				q, err := invoke(e, src, level, nil)
				rep.Generated++
				if err != nil {
					rep.Failures = append(rep.Failures, Failure{Topic: e.ID, Level: level, Draw: i, Err: err})
					continue
				}
				if verr := problemgen.Validate(q, validators); verr != nil {
					rep.Failures = append(rep.Failures, Failure{Topic: e.ID, Level: level, Draw: i, Question: q, Err: verr})
				}
			}
		}
		r.logger.Debug("registry: selftest topic done", "topic", e.ID, "failures", len(rep.Failures))
	}
	return rep
}

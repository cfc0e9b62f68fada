package registry

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
	"github.com/abhisek/examforge/internal/topics"
)

func constant(topic problemgen.TopicID) problemgen.Func {
	return func(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
		return &problemgen.Question{
			ID:         problemgen.NewID(r, topic),
			Topic:      topic,
			Text:       "2 + 2",
			Answer:     "4",
			Difficulty: level,
			Checker:    answer.Integer("4"),
		}, nil
	}
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNew_DropsInvalidEntries(t *testing.T) {
	var buf bytes.Buffer
	reg := New([]problemgen.Entry{
		{ID: "a", MaxLevel: 2, Generate: constant("a")},
		{ID: "b", MaxLevel: 2},
		{ID: "a", MaxLevel: 3, Generate: constant("a")},
		{Name: "anonymous", Generate: constant("x")},
		{ID: "c", MaxLevel: 1, Generate: constant("c")},
	}, testLogger(&buf))

	assert.Equal(t, []problemgen.TopicID{"a", "c"}, reg.Topics())
	assert.False(t, reg.Has("b"))
	e, ok := reg.Entry("a")
	require.True(t, ok)
	assert.Equal(t, 2, e.MaxLevel, "first registration wins")

	logs := buf.String()
	assert.Contains(t, logs, "dropping entry without generator")
	assert.Contains(t, logs, "dropping duplicate entry")
	assert.Contains(t, logs, "dropping entry without id")
}

func TestDefault_CoversCatalogue(t *testing.T) {
	reg := Default()
	assert.Same(t, reg, Default())
	assert.Len(t, reg.Topics(), len(topics.Catalog()))
	for _, e := range topics.Catalog() {
		assert.True(t, reg.Has(e.ID), e.ID)
	}
}

func TestGenerate_UnknownTopic(t *testing.T) {
	_, err := Default().Generate(Request{Topic: "no-such-topic", Level: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTopic)
	assert.Contains(t, err.Error(), "no-such-topic")
}

func TestGenerate_ClampsLevel(t *testing.T) {
	reg := New([]problemgen.Entry{{ID: "a", MaxLevel: 2, Generate: constant("a")}}, nil)

	q, err := reg.Generate(Request{Topic: "a", Level: 9, Rand: rng.New(1)})
	require.NoError(t, err)
	assert.Equal(t, 2, q.Difficulty)

	q, err = reg.Generate(Request{Topic: "a", Level: -3, Rand: rng.New(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, q.Difficulty)
}

func TestGenerate_Reproducible(t *testing.T) {
	reg := Default()
	a, err := reg.Generate(Request{Topic: topics.QuadraticRoots, Level: 3, Rand: rng.New(42)})
	require.NoError(t, err)
	b, err := reg.Generate(Request{Topic: topics.QuadraticRoots, Level: 3, Rand: rng.New(42)})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_NilRandStillWorks(t *testing.T) {
	q, err := Default().Generate(Request{Topic: topics.Addition, Level: 2})
	require.NoError(t, err)
	assert.True(t, q.Check(q.Answer))
}

func TestGenerate_FaultsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	reg := New([]problemgen.Entry{
		{ID: "errs", MaxLevel: 1, Generate: func(*rng.Rand, int, problemgen.Weights) (*problemgen.Question, error) {
			return nil, boom
		}},
		{ID: "panics", MaxLevel: 1, Generate: func(*rng.Rand, int, problemgen.Weights) (*problemgen.Question, error) {
			var m map[string]int
			m["x"]++
			return nil, nil
		}},
		{ID: "empty", MaxLevel: 1, Generate: func(*rng.Rand, int, problemgen.Weights) (*problemgen.Question, error) {
			return nil, nil
		}},
	}, nil)

	for _, id := range []problemgen.TopicID{"errs", "panics", "empty"} {
		t.Run(string(id), func(t *testing.T) {
			q, err := reg.Generate(Request{Topic: id, Level: 1, Rand: rng.New(1)})
			assert.Nil(t, q)
			var fault *problemgen.GeneratorFault
			require.ErrorAs(t, err, &fault)
			assert.Equal(t, id, fault.Topic)
			assert.Equal(t, 1, fault.Level)
		})
	}

	_, err := reg.Generate(Request{Topic: "errs", Level: 1})
	assert.ErrorIs(t, err, boom)
}

func TestGenerateN(t *testing.T) {
	reg := Default()

	qs, err := reg.GenerateN(Request{Topic: topics.Addition, Level: 1, Rand: rng.New(3)}, 25)
	require.NoError(t, err)
	assert.Len(t, qs, 25)
	for _, q := range qs {
		assert.Equal(t, topics.Addition, q.Topic)
	}

	qs, err = reg.GenerateN(Request{Topic: topics.Addition, Level: 1}, 0)
	require.NoError(t, err)
	assert.Empty(t, qs)

	_, err = reg.GenerateN(Request{Topic: topics.Addition, Level: 1}, -1)
	assert.Error(t, err)

	_, err = reg.GenerateN(Request{Topic: "missing", Level: 1}, 3)
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestGenerateN_SeededBatchReproducible(t *testing.T) {
	reg := Default()
	a, err := reg.GenerateN(Request{Topic: topics.Probability, Level: 3, Rand: rng.New(8)}, 10)
	require.NoError(t, err)
	b, err := reg.GenerateN(Request{Topic: topics.Probability, Level: 3, Rand: rng.New(8)}, 10)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSelfTest(t *testing.T) {
	broken := func(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
		return &problemgen.Question{
			ID:         problemgen.NewID(r, "broken"),
			Topic:      "broken",
			Text:       "2 + 2",
			Answer:     "5",
			Difficulty: level,
			Checker:    answer.Integer("5"),
		}, nil
	}
	reg := New([]problemgen.Entry{
		{ID: "ok", MaxLevel: 2, Generate: constant("ok")},
		{ID: "broken", MaxLevel: 1, Generate: broken},
	}, nil)

	rep := reg.SelfTest(rng.New(77), 5, problemgen.DefaultValidators())
	assert.Equal(t, uint64(77), rep.Seed)
	assert.Equal(t, 15, rep.Generated)
	assert.False(t, rep.OK())
	require.Len(t, rep.Failures, 5)
	for _, f := range rep.Failures {
		assert.Equal(t, problemgen.TopicID("broken"), f.Topic)
		assert.Contains(t, f.Err.Error(), "arithmetic")
	}
}

func TestSelfTest_FullCatalogue(t *testing.T) {
	draws := 20
	if testing.Short() {
		draws = 3
	}
	rep := Default().SelfTest(rng.New(2024), draws, problemgen.DefaultValidators())
	for _, f := range rep.Failures {
		t.Errorf("%s L%d draw %d: %v", f.Topic, f.Level, f.Draw, f.Err)
	}
}

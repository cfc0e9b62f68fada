package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examforge/internal/problemgen"
)

func TestParsePlan(t *testing.T) {
	p, err := ParsePlan([]byte(`
name: mock paper warm-up
count: 12
seed: 42
topics:
  - id: fraction-addition
    level: 2
  - id: pythagoras
`))
	require.NoError(t, err)
	assert.Equal(t, "mock paper warm-up", p.Name)
	assert.Equal(t, 12, p.Count)
	require.NotNil(t, p.Seed)
	assert.Equal(t, uint64(42), *p.Seed)
	assert.Equal(t, []problemgen.TopicID{"fraction-addition", "pythagoras"}, p.TopicIDs())
	assert.Equal(t, map[problemgen.TopicID]int{"fraction-addition": 2}, p.Levels())
}

func TestParsePlan_DefaultCount(t *testing.T) {
	p, err := ParsePlan([]byte("topics:\n  - id: addition\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPlanCount, p.Count)
	assert.Nil(t, p.Seed)
}

func TestParsePlan_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no topics", "count: 3\n", "no topics"},
		{"negative count", "count: -1\ntopics:\n  - id: a\n", "negative"},
		{"empty id", "topics:\n  - level: 2\n", "has no id"},
		{"negative level", "topics:\n  - id: a\n    level: -2\n", "negative level"},
		{"bad yaml", "topics: [", "parse plan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlan([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteAndLoadPlan(t *testing.T) {
	seed := uint64(7)
	want := &Plan{
		Name:  "revision",
		Count: 5,
		Seed:  &seed,
		Topics: []PlanTopic{
			{ID: "density", Level: 3},
			{ID: "averages"},
		},
	}
	path := filepath.Join(t.TempDir(), "plans", "revision.yaml")
	require.NoError(t, WritePlan(path, want))

	got, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWritePlan_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.Error(t, WritePlan(path, &Plan{Count: 3}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadPlan_Missing(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read plan")
}

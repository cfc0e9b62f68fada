package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/registry"
	"github.com/abhisek/examforge/internal/session"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateJSON(t *testing.T) {
	out, err := run(t, "generate", "--topic", "addition", "--count", "3", "--seed", "7", "--json")
	require.NoError(t, err)

	var qs []problemgen.Question
	require.NoError(t, json.Unmarshal([]byte(out), &qs))
	require.Len(t, qs, 3)
	for _, q := range qs {
		assert.Equal(t, problemgen.TopicID("addition"), q.Topic)
		assert.NotEmpty(t, q.Answer)
	}
}

func TestGenerateReproducible(t *testing.T) {
	first, err := run(t, "generate", "--topic", "pythagoras", "--count", "4", "--seed", "99", "--json=false")
	require.NoError(t, err)
	second, err := run(t, "generate", "--topic", "pythagoras", "--count", "4", "--seed", "99", "--json=false")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "seed 99")
}

func TestGenerateUnknownTopic(t *testing.T) {
	_, err := run(t, "generate", "--topic", "no-such-topic", "--count", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrUnknownTopic))
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--correct", "0.75", "--answer", "0.751", "--numeric", "--tolerance", "0.01")
	require.NoError(t, err)
	assert.Contains(t, out, "correct")

	out, err = run(t, "check", "--correct", "0.75", "--answer", "0.9", "--numeric", "--tolerance", "0.01")
	assert.ErrorIs(t, err, ErrIncorrect)
	assert.Contains(t, out, "incorrect")
}

func TestCheckUnknownRule(t *testing.T) {
	_, err := run(t, "check", "--correct", "1", "--answer", "1", "--rule", "astrology")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule")
}

func TestMixSavePlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans", "warmup.yaml")
	out, err := run(t, "mix", "--topics", "hcf,lcm,nonexistent", "--count", "6", "--seed", "3",
		"--levels", "hcf=2", "--save-plan", path, "--json")
	require.NoError(t, err)

	var qs []problemgen.Question
	require.NoError(t, json.Unmarshal([]byte(out), &qs))
	assert.Len(t, qs, 6)

	plan, err := session.LoadPlan(path)
	require.NoError(t, err)
	require.NotNil(t, plan.Seed)
	assert.Equal(t, uint64(3), *plan.Seed)
	assert.Equal(t, 6, plan.Count)
	assert.Equal(t, 2, plan.Levels()["hcf"])
	assert.Len(t, plan.Topics, 3)
}

func TestStatsEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	out, err := run(t, "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No practice history yet")
}

func TestResetNeedsConfirmation(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	_, err := run(t, "reset", "--db", db)
	require.Error(t, err)

	out, err := run(t, "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")
}

func TestSelftest(t *testing.T) {
	out, err := run(t, "selftest", "--draws", "2", "--seed", "11")
	require.NoError(t, err)
	assert.Contains(t, out, "all questions valid")
	assert.Contains(t, out, "seed 11")
}

func TestResolveSeedFromEnv(t *testing.T) {
	t.Setenv(seedEnv, "1234")
	seed, err := resolveSeed(topicsCmd)
	require.NoError(t, err)
	require.NotNil(t, seed)
	assert.Equal(t, uint64(1234), *seed)

	t.Setenv(seedEnv, "abc")
	_, err = resolveSeed(topicsCmd)
	assert.Error(t, err)
}

func TestParseWeights(t *testing.T) {
	w, err := parseWeights(map[string]string{"7": "3", "carry": "0.5"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, w["7"])
	assert.Equal(t, 0.5, w["carry"])

	_, err = parseWeights(map[string]string{"7": "-1"})
	assert.Error(t, err)
	_, err = parseWeights(map[string]string{"7": "lots"})
	assert.Error(t, err)

	w, err = parseWeights(nil)
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestTopicsByStrand(t *testing.T) {
	out, err := run(t, "topics", "--strand", "physics")
	require.NoError(t, err)
	assert.Contains(t, out, "Physics")
	assert.NotContains(t, out, "Algebra")

	_, err = run(t, "topics", "--strand", "astrology")
	assert.Error(t, err)
}

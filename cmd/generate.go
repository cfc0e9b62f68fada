package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/registry"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate questions for a single topic",
	Example: "  examforge generate --topic pythagoras --level 2 --count 5\n" +
		"  examforge generate --topic addition --weights 7=3,9=3 --json",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		level, _ := cmd.Flags().GetInt("level")
		count, _ := cmd.Flags().GetInt("count")
		asJSON, _ := cmd.Flags().GetBool("json")
		rawWeights, _ := cmd.Flags().GetStringToString("weights")

		weights, err := parseWeights(rawWeights)
		if err != nil {
			return err
		}
		seed, err := resolveSeed(cmd)
		if err != nil {
			return err
		}
		src := newRand(seed)

		reg := registry.Default()
		qs, err := reg.GenerateN(registry.Request{
			Topic:   problemgen.TopicID(topic),
			Level:   level,
			Weights: weights,
			Rand:    src,
		}, count)
		if err != nil {
			return fmt.Errorf("generate %s: %w", topic, err)
		}
		slog.Debug("generated questions", "topic", topic, "level", level, "count", len(qs), "seed", src.Seed())

		if asJSON {
			return writeQuestionsJSON(cmd.OutOrStdout(), qs)
		}
		writeQuestionsText(cmd.OutOrStdout(), reg, qs, src.Seed())
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Topic id (see 'examforge topics')")
	generateCmd.Flags().IntP("level", "l", 1, "Difficulty level; out-of-range values are clamped")
	generateCmd.Flags().IntP("count", "n", 1, "Number of questions")
	generateCmd.Flags().Uint64("seed", 0, "Seed for reproducible output (overrides EXAMFORGE_SEED)")
	generateCmd.Flags().Bool("json", false, "Emit schema-checked JSON instead of text")
	generateCmd.Flags().StringToString("weights", nil, "Generator bias, e.g. 7=3,9=2 or a template name")
	_ = generateCmd.MarkFlagRequired("topic")
}

// parseWeights converts key=value flag pairs into generator weights.
func parseWeights(raw map[string]string) (problemgen.Weights, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	w := make(problemgen.Weights, len(raw))
	for k, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("weight %s: %w", k, err)
		}
		if f < 0 {
			return nil, fmt.Errorf("weight %s: must not be negative", k)
		}
		w[k] = f
	}
	return w, nil
}

// writeQuestionsJSON emits qs as a JSON array after checking each question
// against the question schema.
func writeQuestionsJSON(w io.Writer, qs []*problemgen.Question) error {
	for _, q := range qs {
		raw, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", q.ID, err)
		}
		if err := problemgen.ValidateJSON(raw); err != nil {
			return fmt.Errorf("question %s: %w", q.ID, err)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(qs)
}

// writeQuestionsText prints a numbered worksheet with answers.
func writeQuestionsText(w io.Writer, reg *registry.Registry, qs []*problemgen.Question, seed uint64) {
	for i, q := range qs {
		name := string(q.Topic)
		if e, ok := reg.Entry(q.Topic); ok {
			name = e.Name
		}
		fmt.Fprintf(w, "%d. [%s, level %d]\n", i+1, name, q.Difficulty)
		for _, line := range strings.Split(q.Text, "\n") {
			fmt.Fprintf(w, "   %s\n", line)
		}
		fmt.Fprintf(w, "   Answer: %s\n", q.Answer)
		if q.Explanation != "" {
			fmt.Fprintf(w, "   Working: %s\n", q.Explanation)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "seed %d\n", seed)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/registry"
	"github.com/abhisek/examforge/internal/session"
)

var mixCmd = &cobra.Command{
	Use:   "mix",
	Short: "Compose a shuffled set across several topics",
	Long: "Compose a shuffled practice set across several topics. Unknown topics and\n" +
		"generator faults become placeholder questions instead of failing the set.",
	Example: "  examforge mix --topics pythagoras,density --count 8 --levels pythagoras=2\n" +
		"  examforge mix --plan warmup.yaml\n" +
		"  examforge mix --topics hcf,lcm --save-plan warmup.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := mixPlan(cmd)
		if err != nil {
			return err
		}

		src := newRand(plan.Seed)
		if path, _ := cmd.Flags().GetString("save-plan"); path != "" {
			// Saved plans always pin the seed so they replay the same set.
			seed := src.Seed()
			plan.Seed = &seed
			if err := session.WritePlan(path, plan); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "plan saved to %s\n", path)
		}

		reg := registry.Default()
		qs := session.NewComposer(reg, slog.Default()).GenerateMixed(src, plan.TopicIDs(), plan.Count, plan.Levels())

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeMixJSON(cmd, qs)
		}
		writeQuestionsText(cmd.OutOrStdout(), reg, qs, src.Seed())
		return nil
	},
}

func init() {
	mixCmd.Flags().StringSlice("topics", nil, "Comma-separated topic ids")
	mixCmd.Flags().IntP("count", "n", session.DefaultPlanCount, "Total number of questions")
	mixCmd.Flags().StringToInt("levels", nil, "Per-topic levels, e.g. pythagoras=2,density=3")
	mixCmd.Flags().String("plan", "", "Load topics, count and seed from a YAML plan")
	mixCmd.Flags().String("save-plan", "", "Write the resolved plan to a YAML file")
	mixCmd.Flags().Uint64("seed", 0, "Seed for reproducible output (overrides EXAMFORGE_SEED)")
	mixCmd.Flags().Bool("json", false, "Emit JSON instead of text")
	mixCmd.MarkFlagsMutuallyExclusive("plan", "topics")
}

// mixPlan resolves flags into a plan. Flags given explicitly override the
// loaded plan's count and seed.
func mixPlan(cmd *cobra.Command) (*session.Plan, error) {
	flags := cmd.Flags()
	var plan *session.Plan
	if path, _ := flags.GetString("plan"); path != "" {
		p, err := session.LoadPlan(path)
		if err != nil {
			return nil, err
		}
		plan = p
	} else {
		ids, _ := flags.GetStringSlice("topics")
		if len(ids) == 0 {
			return nil, fmt.Errorf("either --topics or --plan is required")
		}
		levels, _ := flags.GetStringToInt("levels")
		plan = &session.Plan{Count: session.DefaultPlanCount}
		for _, id := range ids {
			plan.Topics = append(plan.Topics, session.PlanTopic{ID: problemgen.TopicID(id), Level: levels[id]})
		}
	}

	if plan.Seed == nil || flags.Changed("seed") {
		seed, err := resolveSeed(cmd)
		if err != nil {
			return nil, err
		}
		if seed != nil {
			plan.Seed = seed
		}
	}
	if flags.Changed("count") || flags.Lookup("plan").Value.String() == "" {
		n, _ := flags.GetInt("count")
		if n < 0 {
			return nil, fmt.Errorf("count %d is negative", n)
		}
		plan.Count = n
	}
	return plan, nil
}

// writeMixJSON emits the set, schema-checking every real question.
// Placeholders carry no checker and may use ids outside the catalogue.
func writeMixJSON(cmd *cobra.Command, qs []*problemgen.Question) error {
	for _, q := range qs {
		if session.IsPlaceholder(q) {
			continue
		}
		raw, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", q.ID, err)
		}
		if err := problemgen.ValidateJSON(raw); err != nil {
			return fmt.Errorf("question %s: %w", q.ID, err)
		}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(qs)
}

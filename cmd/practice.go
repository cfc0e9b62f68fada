package cmd

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/examforge/internal/app"
	"github.com/abhisek/examforge/internal/registry"
	sessionscreen "github.com/abhisek/examforge/internal/screens/session"
	"github.com/abhisek/examforge/internal/session"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an interactive practice session",
	Long: "Start an interactive practice session. Without --topics or --plan the topic\n" +
		"picker opens; otherwise the set starts straight away. Every answer is saved\n" +
		"to the local history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		ids, _ := flags.GetStringSlice("topics")
		planPath, _ := flags.GetString("plan")
		if len(ids) == 0 && planPath == "" {
			seed, err := resolveSeed(cmd)
			if err != nil {
				return err
			}
			return runHome(cmd, seed)
		}

		plan, err := mixPlan(cmd)
		if err != nil {
			return err
		}
		if plan.Count == 0 {
			return fmt.Errorf("count must be positive")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		reg := registry.Default()
		src := newRand(plan.Seed)
		qs := session.NewComposer(reg, slog.Default()).GenerateMixed(src, plan.TopicIDs(), plan.Count, plan.Levels())

		state := session.NewState(uuid.NewString(), src.Seed(), qs)
		state.EventRepo = st.EventRepo()
		slog.Debug("practice session prepared", "session", state.SessionID, "questions", len(state.Questions), "seed", src.Seed())

		return app.Run(sessionscreen.New(state, reg))
	},
}

func init() {
	practiceCmd.Flags().StringSlice("topics", nil, "Comma-separated topic ids; omit to pick interactively")
	practiceCmd.Flags().IntP("count", "n", session.DefaultPlanCount, "Number of questions")
	practiceCmd.Flags().StringToInt("levels", nil, "Per-topic levels, e.g. pythagoras=2")
	practiceCmd.Flags().String("plan", "", "Load topics, count and seed from a YAML plan")
	practiceCmd.Flags().Uint64("seed", 0, "Seed for reproducible sets (overrides EXAMFORGE_SEED)")
	practiceCmd.MarkFlagsMutuallyExclusive("plan", "topics")
}

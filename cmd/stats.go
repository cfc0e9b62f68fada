package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/registry"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()
		limit, _ := cmd.Flags().GetInt("sessions")

		stats, err := repo.TopicStats(ctx)
		if err != nil {
			return fmt.Errorf("topic stats: %w", err)
		}
		sessions, err := repo.RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("recent sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(stats) == 0 && len(sessions) == 0 {
			fmt.Fprintln(out, "No practice history yet. Run 'examforge practice' to start.")
			return nil
		}

		reg := registry.Default()
		fmt.Fprintf(out, "%-34s %8s %8s %9s  %s\n", "Topic", "Attempts", "Correct", "Accuracy", "Last practised")
		fmt.Fprintln(out, strings.Repeat("─", 82))
		for _, s := range stats {
			name := s.TopicID
			if e, ok := reg.Entry(problemgen.TopicID(s.TopicID)); ok {
				name = e.Name
			}
			fmt.Fprintf(out, "%-34s %8d %8d %8.0f%%  %s\n",
				name, s.Attempts, s.Correct, s.Accuracy*100, s.LastAttempt.Local().Format("2006-01-02 15:04"))
		}

		if len(sessions) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "%-17s %-10s %-22s %s\n", "Started", "Score", "Seed", "Duration")
			fmt.Fprintln(out, strings.Repeat("─", 62))
			for _, s := range sessions {
				dur := "unfinished"
				if !s.EndedAt.IsZero() {
					dur = fmt.Sprintf("%d:%02d", s.DurationSecs/60, s.DurationSecs%60)
				}
				fmt.Fprintf(out, "%-17s %-10s %-22d %s\n",
					s.StartedAt.Local().Format("2006-01-02 15:04"),
					fmt.Sprintf("%d/%d", s.Correct, s.Questions), s.Seed, dur)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("sessions", 10, "Number of recent sessions to list")
}

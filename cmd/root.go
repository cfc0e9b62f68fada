package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/examforge/internal/app"
	"github.com/abhisek/examforge/internal/registry"
	"github.com/abhisek/examforge/internal/rng"
	"github.com/abhisek/examforge/internal/screens/home"
	"github.com/abhisek/examforge/internal/session"
	"github.com/abhisek/examforge/internal/store"
)

// seedEnv pins the random source when --seed is not given.
const seedEnv = "EXAMFORGE_SEED"

var rootCmd = &cobra.Command{
	Use:   "examforge",
	Short: "Procedural maths and physics question generator",
	Long: "ExamForge generates exam-style maths and physics questions with worked answers,\n" +
		"checks typed answers tolerantly and keeps a local practice history.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHome(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMFORGE_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXAMFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database selected by --db.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	slog.Debug("store opened", "path", dbPath)
	return st, nil
}

// resolveSeed returns the seed from --seed, then EXAMFORGE_SEED, or nil
// when neither is set.
func resolveSeed(cmd *cobra.Command) (*uint64, error) {
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		v, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	if env := os.Getenv(seedEnv); env != "" {
		v, err := strconv.ParseUint(env, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", seedEnv, err)
		}
		return &v, nil
	}
	return nil, nil
}

// newRand builds a source from an optional seed.
func newRand(seed *uint64) *rng.Rand {
	if seed != nil {
		return rng.New(*seed)
	}
	return rng.NewUnseeded()
}

// runHome opens the store and launches the topic picker.
func runHome(cmd *cobra.Command, seed *uint64) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if seed == nil {
		if seed, err = resolveSeed(cmd); err != nil {
			return err
		}
	}
	reg := registry.Default()
	count, _ := cmd.Flags().GetInt("count")
	return app.Run(home.New(home.Config{
		Registry: reg,
		Composer: session.NewComposer(reg, slog.Default()),
		Repo:     st.EventRepo(),
		Count:    count,
		Seed:     seed,
	}))
}

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/ui/theme"
)

// ErrIncorrect is returned by the check command when the answer is rejected.
// main maps it to exit status 2.
var ErrIncorrect = errors.New("answer rejected")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an answer against a correct value",
	Example: "  examforge check --correct 3/4 --answer 0.75 --numeric --fraction\n" +
		"  examforge check --correct \"x = 2 or x = -3\" --answer \"-3, 2\" --rule roots",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		correct, _ := flags.GetString("correct")
		user, _ := flags.GetString("answer")

		var opts []answer.Option
		if on, _ := flags.GetBool("numeric"); on {
			tol, _ := flags.GetFloat64("tolerance")
			if tol < 0 {
				return fmt.Errorf("tolerance %g is negative", tol)
			}
			opts = append(opts, answer.WithNumeric(tol))
		}
		if on, _ := flags.GetBool("fraction"); on {
			opts = append(opts, answer.WithFractions())
		}
		if on, _ := flags.GetBool("scientific"); on {
			opts = append(opts, answer.WithScientific())
		}
		if alts, _ := flags.GetStringSlice("alternate"); len(alts) > 0 {
			opts = append(opts, answer.WithAlternates(alts...))
		}
		if rule, _ := flags.GetString("rule"); rule != "" {
			if _, ok := answer.LookupRule(rule); !ok {
				return fmt.Errorf("unknown rule %q (known: %s)", rule, strings.Join(answer.RuleNames(), ", "))
			}
			opts = append(opts, answer.WithRule(rule))
		}

		ok := answer.New(correct, opts...).Check(user)
		out := cmd.OutOrStdout()
		if ok {
			lipgloss.Fprintln(out, theme.Correct.Render("✓ correct"))
			return nil
		}
		lipgloss.Fprintln(out, theme.Incorrect.Render("✗ incorrect"))
		fmt.Fprintf(out, "  normalised answer: %q\n", answer.Normalize(user))
		fmt.Fprintf(out, "  expected:          %q\n", answer.Normalize(correct))
		return ErrIncorrect
	},
}

func init() {
	checkCmd.Flags().String("correct", "", "Canonical correct answer")
	checkCmd.Flags().String("answer", "", "Answer to check")
	checkCmd.Flags().Bool("numeric", false, "Accept decimals within --tolerance")
	checkCmd.Flags().Bool("fraction", false, "Accept equal fractions in lowest terms")
	checkCmd.Flags().Bool("scientific", false, "Accept standard form with matching exponent")
	checkCmd.Flags().Float64("tolerance", answer.DefaultTolerance, "Absolute tolerance for numeric comparison")
	checkCmd.Flags().StringSlice("alternate", nil, "Further literal answers to accept")
	checkCmd.Flags().String("rule", "", "Custom equivalence rule (roots, surd, prime-factors, ...)")
	_ = checkCmd.MarkFlagRequired("correct")
	_ = checkCmd.MarkFlagRequired("answer")
}

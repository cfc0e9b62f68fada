package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/registry"
	"github.com/abhisek/examforge/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List every topic that can generate questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		strand, _ := cmd.Flags().GetString("strand")
		reg := registry.Default()

		out := cmd.OutOrStdout()
		shown := 0
		for _, s := range topics.AllStrands() {
			if strand != "" && string(s) != strand {
				continue
			}
			var rows []problemgen.Entry
			for _, e := range reg.Entries() {
				if e.Strand == s {
					rows = append(rows, e)
				}
			}
			if len(rows) == 0 {
				continue
			}
			if shown > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s\n", topics.StrandDisplayName(s))
			fmt.Fprintf(out, "%-28s %-34s %s\n", "ID", "Name", "Levels")
			fmt.Fprintln(out, strings.Repeat("─", 70))
			for _, e := range rows {
				fmt.Fprintf(out, "%-28s %-34s 1-%d\n", e.ID, e.Name, max(e.MaxLevel, 1))
			}
			shown++
		}
		if shown == 0 {
			return fmt.Errorf("no topics in strand %q", strand)
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().String("strand", "", "Only list topics in this strand (number, algebra, physics, ...)")
}

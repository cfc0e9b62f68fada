package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all practice history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("this deletes every saved session and attempt; rerun with --yes to confirm")
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.EventRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Practice history deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm deletion")
}

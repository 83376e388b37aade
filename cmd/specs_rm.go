package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rmSubstr  string
	rmExclude bool
)

var specsRmCmd = &cobra.Command{
	Use:   "specs:rm [handle]",
	Short: "Remove registered specs",
	Long: `Remove a spec by handle, or a batch of specs by substring query.

Undeletable and user-locked specs are never removed; a substring removal
silently skips them.

Examples:
  # Remove one spec
  curator specs:rm specs/chair.yaml

  # Remove every spec whose handle contains "prototype"
  curator specs:rm --substr prototype

  # Remove everything removable
  curator specs:rm --substr ""`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !cmd.Flags().Changed("substr") {
			return fmt.Errorf("provide a handle or a --substr query")
		}

		mgr, _, err := buildManager()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			obj, err := mgr.RemoveObjectByHandle(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("removed %s (id %d)\n", obj.GetHandle(), obj.GetID())
			return nil
		}

		removed := mgr.RemoveObjectsBySubstring(rmSubstr, !rmExclude)
		for _, obj := range removed {
			fmt.Printf("removed %s (id %d)\n", obj.GetHandle(), obj.GetID())
		}
		fmt.Printf("%d spec(s) removed\n", len(removed))
		return nil
	},
}

func init() {
	specsRmCmd.Flags().StringVarP(&rmSubstr, "substr", "s", "", "remove handles matching this substring")
	specsRmCmd.Flags().BoolVar(&rmExclude, "exclude", false, "invert the substring match")
	rootCmd.AddCommand(specsRmCmd)
}

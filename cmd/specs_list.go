package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listSubstr  string
	listExclude bool
)

var specsListCmd = &cobra.Command{
	Use:   "specs:list",
	Short: "List registered spec handles",
	Long: `List the handles of all registered specs, with their IDs and class keys.

Use --substr to filter handles by substring, and --exclude to invert the
match.

Examples:
  # List everything
  curator specs:list

  # Handles containing "chair"
  curator specs:list --substr chair

  # Handles NOT containing "primitive"
  curator specs:list --substr primitive --exclude`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _, err := buildManager()
		if err != nil {
			return err
		}

		handles := mgr.HandlesBySubstring(listSubstr, !listExclude)
		for _, handle := range handles {
			obj, err := mgr.GetObjectCopyByHandle(handle)
			if err != nil {
				continue
			}
			fmt.Printf("%4d  %-10s  %s\n", obj.GetID(), obj.GetClassKey(), handle)
		}
		fmt.Printf("%d spec(s)\n", len(handles))
		return nil
	},
}

func init() {
	specsListCmd.Flags().StringVarP(&listSubstr, "substr", "s", "", "filter handles by substring")
	specsListCmd.Flags().BoolVar(&listExclude, "exclude", false, "invert the substring match")
	rootCmd.AddCommand(specsListCmd)
}

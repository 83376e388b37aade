package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var specsShowCmd = &cobra.Command{
	Use:   "specs:show <handle>",
	Short: "Show a registered spec as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _, err := buildManager()
		if err != nil {
			return err
		}

		obj, err := mgr.GetObjectCopyByHandle(args[0])
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(obj.Doc())
		if err != nil {
			return fmt.Errorf("rendering spec: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(specsShowCmd)
}
